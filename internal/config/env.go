package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables that override the configuration file.
const (
	EnvURL       = "N8N_URL"
	EnvAPIKey    = "N8N_API_KEY"
	EnvTimeout   = "N8N_TIMEOUT"
	EnvAPIPath   = "N8N_API_PATH"
	EnvPort      = "PORT"
	EnvTransport = "MCP_TRANSPORT"
)

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays environment values onto cfg. Empty values are ignored.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvURL); ok {
		cfg.N8N.URL = v
	}
	if v, ok := get(EnvAPIKey); ok {
		cfg.N8N.APIKey = v
	}
	if v, ok := get(EnvAPIPath); ok {
		cfg.N8N.APIPath = v
	}
	if v, ok := get(EnvTimeout); ok {
		d, err := ParseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.N8N.Timeout = d
	}
	if v, ok := get(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		cfg.Server.Port = port
	}
	if v, ok := get(EnvTransport); ok {
		cfg.Server.Transport = v
	}
	return nil
}

// ParseTimeout accepts either a bare number of milliseconds ("15000")
// or a Go duration ("15s").
func ParseTimeout(v string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("timeout must not be negative")
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", v)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative")
	}
	return d, nil
}

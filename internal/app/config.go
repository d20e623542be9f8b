package app

import (
	"io"

	"n8n-mcp/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug forces debug logging regardless of LogLevel.
	Debug bool

	// LogLevel is one of debug, info, warn or error.
	LogLevel string

	// Custom configuration file path (optional).
	// When empty, $HOME/.config/n8n-mcp/config.yaml is used if present.
	ConfigPath string

	// Version is reported to MCP clients and on the info endpoint.
	Version string

	// Overrides carries command line flags. They win over the file and the environment.
	Overrides Overrides

	// Stdin and Stdout carry the protocol stream in stdio mode.
	// They default to os.Stdin and os.Stdout.
	Stdin  io.Reader
	Stdout io.Writer

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Loaded configuration, populated by NewApplication when nil.
	N8NMCPConfig *config.Config
}

// Overrides are the command line settings layered over the loaded configuration.
// Zero values mean "not set".
type Overrides struct {
	Transport       string
	Host            string
	Port            int
	DenyDestructive bool
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, logLevel, configPath, version string) *Config {
	return &Config{
		Debug:      debug,
		LogLevel:   logLevel,
		ConfigPath: configPath,
		Version:    version,
	}
}

// apply layers the overrides onto cfg.
func (o Overrides) apply(cfg *config.Config) {
	if o.Transport != "" {
		cfg.Server.Transport = o.Transport
	}
	if o.Host != "" {
		cfg.Server.Host = o.Host
	}
	if o.Port != 0 {
		cfg.Server.Port = o.Port
	}
	if o.DenyDestructive {
		cfg.Server.DenyDestructive = true
	}
}

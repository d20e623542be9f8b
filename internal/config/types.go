package config

import "time"

// Config is the top-level configuration structure for n8n-mcp.
type Config struct {
	N8N    N8NConfig    `yaml:"n8n"`
	Server ServerConfig `yaml:"server"`
}

const (
	// TransportStdio serves a single session over standard input and output.
	TransportStdio = "stdio"
	// TransportStreamableHTTP serves many concurrent sessions keyed by the Mcp-Session-Id header.
	TransportStreamableHTTP = "streamable-http"
	// TransportStatelessHTTP builds a fresh server for every request.
	TransportStatelessHTTP = "stateless-http"
)

// N8NConfig holds the connection settings for one n8n instance.
// A zero URL or APIKey is valid at load time; tools report the gap when called.
type N8NConfig struct {
	URL     string        `yaml:"url,omitempty"`
	APIKey  string        `yaml:"apiKey,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
	APIPath string        `yaml:"apiPath,omitempty"`
}

// Complete reports whether both required connection settings are present.
func (c N8NConfig) Complete() bool {
	return c.URL != "" && c.APIKey != ""
}

// Missing returns the environment names of the required settings that are empty.
func (c N8NConfig) Missing() []string {
	var missing []string
	if c.URL == "" {
		missing = append(missing, EnvURL)
	}
	if c.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	return missing
}

// RequireComplete returns a *ConfigurationError naming the missing settings, or nil.
func (c *N8NConfig) RequireComplete() error {
	if c == nil {
		return &ConfigurationError{Missing: []string{EnvURL, EnvAPIKey}}
	}
	if missing := c.Missing(); len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// ServerConfig controls how the MCP server is exposed.
type ServerConfig struct {
	Transport         string        `yaml:"transport,omitempty"`         // stdio, streamable-http or stateless-http
	Host              string        `yaml:"host,omitempty"`              // Bind address (default: all interfaces)
	Port              int           `yaml:"port,omitempty"`              // Listen port for HTTP transports (default: 3000)
	EndpointPath      string        `yaml:"endpointPath,omitempty"`      // MCP endpoint (default: /mcp)
	HeartbeatInterval time.Duration `yaml:"heartbeatInterval,omitempty"` // Keep-alive pings on GET streams, 0 disables
	MaxSessions       int           `yaml:"maxSessions,omitempty"`       // Live session cap in streamable-http mode
	DenyDestructive   bool          `yaml:"denyDestructive,omitempty"`   // Refuse tools annotated as destructive
	Metrics           bool          `yaml:"metrics"`                     // Serve Prometheus metrics on /metrics
}

// IsHTTP reports whether the configured transport listens on a TCP port.
func (s ServerConfig) IsHTTP() bool {
	return s.Transport == TransportStreamableHTTP || s.Transport == TransportStatelessHTTP
}

package config

import "time"

const (
	DefaultAPIPath      = "/api/v1"
	DefaultTimeout      = 30 * time.Second
	DefaultPort         = 3000
	DefaultEndpointPath = "/mcp"
	DefaultMaxSessions  = 1000
)

// GetDefaultConfig returns the configuration used when no file is present.
func GetDefaultConfig() Config {
	return Config{
		N8N: N8NConfig{
			Timeout: DefaultTimeout,
			APIPath: DefaultAPIPath,
		},
		Server: ServerConfig{
			Transport:    TransportStdio,
			Port:         DefaultPort,
			EndpointPath: DefaultEndpointPath,
			MaxSessions:  DefaultMaxSessions,
			Metrics:      true,
		},
	}
}

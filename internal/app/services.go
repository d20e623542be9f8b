package app

import (
	"fmt"
	"net/http"

	"n8n-mcp/internal/config"
	"n8n-mcp/internal/n8n"
	"n8n-mcp/internal/server"
	"n8n-mcp/internal/transport"
	"n8n-mcp/pkg/logging"
)

// userAgentPrefix is combined with the version for outbound n8n requests.
const userAgentPrefix = "n8n-mcp/"

// Services holds everything the execution modes need.
//
// Field descriptions:
//   - Factory: builds one MCP server instance per session or request
//   - Handler: HTTP router for the HTTP transports, nil in stdio mode
//   - Stateful: the session-keyed handler in streamable-http mode, drained on shutdown
type Services struct {
	Factory  transport.Factory
	Handler  http.Handler
	Stateful *transport.Stateful
}

// InitializeServices builds the server factory and, for the HTTP transports,
// the router that serves it.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.N8NMCPConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	c := *cfg.N8NMCPConfig

	services := &Services{
		Factory: newFactory(cfg.Version, c.Server.DenyDestructive),
	}
	if c.Server.DenyDestructive {
		logging.Info("Bootstrap", "Destructive tools are disabled")
	}

	n8nCfg := c.N8N
	info := transport.InfoSource{
		Version:      cfg.Version,
		Transport:    c.Server.Transport,
		EndpointPath: c.Server.EndpointPath,
		N8NURL:       n8nCfg.URL,
	}

	switch c.Server.Transport {
	case config.TransportStdio:
		return services, nil

	case config.TransportStreamableHTTP:
		stateful := transport.NewStateful(transport.StatefulOptions{
			Factory:           services.Factory,
			N8N:               &n8nCfg,
			MaxSessions:       c.Server.MaxSessions,
			HeartbeatInterval: c.Server.HeartbeatInterval,
		})
		info.Sessions = stateful.Sessions
		services.Stateful = stateful
		services.Handler = transport.NewRouter(transport.RouterOptions{
			MCP:          stateful,
			EndpointPath: c.Server.EndpointPath,
			Info:         info,
			Metrics:      c.Server.Metrics,
		})
		return services, nil

	case config.TransportStatelessHTTP:
		services.Handler = transport.NewRouter(transport.RouterOptions{
			MCP: transport.NewStateless(transport.StatelessOptions{
				Factory: services.Factory,
				N8N:     &n8nCfg,
			}),
			EndpointPath: c.Server.EndpointPath,
			Info:         info,
			Metrics:      c.Server.Metrics,
			CORS:         true,
		})
		return services, nil

	default:
		return nil, fmt.Errorf("unsupported transport %q", c.Server.Transport)
	}
}

func newFactory(version string, denyDestructive bool) transport.Factory {
	if version == "" {
		version = "dev"
	}
	return func(n8nCfg *config.N8NConfig) *server.Instance {
		return server.New(server.Options{
			N8N:             n8nCfg,
			Version:         version,
			DenyDestructive: denyDestructive,
			ClientOptions:   []n8n.Option{n8n.WithUserAgent(userAgentPrefix + version)},
		})
	}
}

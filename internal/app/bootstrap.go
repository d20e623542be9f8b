package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"n8n-mcp/internal/config"
	"n8n-mcp/pkg/logging"
)

// Application represents the main application structure that bootstraps and runs n8n-mcp.
// It encapsulates the resolved configuration and the services built from it.
//
// The Application follows a two-phase initialization pattern:
//  1. Bootstrap phase: initialize logging, load configuration, build services
//  2. Execution phase: serve MCP on the selected transport until cancelled
//
// Example usage:
//
//	cfg := app.NewConfig(false, "info", "", version)
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	return application.Run(ctx)
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance with the provided configuration.
// This function performs the complete bootstrap sequence:
//
//  1. Configures logging on stderr from the debug and log level settings
//  2. Loads the configuration file, then overlays the environment
//  3. Applies command line overrides and validates the result
//  4. Builds the server factory and the transport handlers
//
// Missing n8n credentials do not fail the bootstrap. Tool discovery works
// without them and each tool call reports the gap instead.
func NewApplication(cfg *Config) (*Application, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		level = logging.LevelDebug
	}

	var logOutput io.Writer = os.Stderr
	if cfg.LogOutput != nil {
		logOutput = cfg.LogOutput
	}
	logging.InitForCLI(level, logOutput)

	if cfg.N8NMCPConfig == nil {
		loaded, err := config.LoadConfig(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.ApplyEnv(&loaded, os.LookupEnv); err != nil {
			return nil, fmt.Errorf("invalid environment: %w", err)
		}
		cfg.N8NMCPConfig = &loaded
	}

	cfg.Overrides.apply(cfg.N8NMCPConfig)
	if err := cfg.N8NMCPConfig.Validate(); err != nil {
		return nil, err
	}

	if missing := cfg.N8NMCPConfig.N8N.Missing(); len(missing) > 0 {
		if cfg.N8NMCPConfig.Server.Transport == config.TransportStatelessHTTP {
			logging.Info("Bootstrap", "%s not set; requests must supply them as query parameters", strings.Join(missing, " and "))
		} else {
			logging.Warn("Bootstrap", "%s not set; tools will fail until they are provided", strings.Join(missing, " and "))
		}
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Run serves MCP on the configured transport.
//
// It blocks until ctx is cancelled, SIGINT or SIGTERM arrives, or, in
// stdio mode, standard input reaches EOF.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signalContext(ctx)
	defer stop()

	switch a.config.N8NMCPConfig.Server.Transport {
	case config.TransportStreamableHTTP:
		return runStreamableHTTP(ctx, a.config, a.services)
	case config.TransportStatelessHTTP:
		return runStatelessHTTP(ctx, a.config, a.services)
	default:
		return runStdio(ctx, a.config, a.services)
	}
}

// Transport returns the resolved transport name.
func (a *Application) Transport() string {
	return a.config.N8NMCPConfig.Server.Transport
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"n8n-mcp/internal/app"
	"n8n-mcp/internal/config"
)

// serveFlags holds the values of the serve flags. They are shared by
// 'n8n-mcp' and 'n8n-mcp serve'.
var serveFlags struct {
	transport       string
	http            bool
	stateless       bool
	host            string
	port            int
	denyDestructive bool
	debug           bool
	logLevel        string
	configPath      string
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the n8n tools over MCP",
		Long: `Starts the MCP server. It can run in three modes:

1. stdio (default):
   - One session over standard input and output.
   - Logs go to stderr.

2. streamable-http (--http or --transport streamable-http):
   - Many concurrent sessions keyed by the Mcp-Session-Id header.
   - POST, GET and DELETE on the MCP endpoint (default /mcp).

3. stateless-http (--stateless or --transport stateless-http):
   - A fresh server for every POST, no sessions.
   - Each request may carry its own N8N_URL and N8N_API_KEY query parameters.

Configuration:
  Settings are read from $HOME/.config/n8n-mcp/config.yaml (or --config),
  then from the environment (N8N_URL, N8N_API_KEY, N8N_TIMEOUT, N8N_API_PATH,
  PORT, MCP_TRANSPORT), then from flags.

  Missing N8N_URL or N8N_API_KEY does not prevent startup. Tools can still be
  listed, and each tool call reports the missing settings.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	addServeFlags(cmd)
	return cmd
}

func addServeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&serveFlags.transport, "transport", "", "Transport: stdio, streamable-http or stateless-http")
	flags.BoolVar(&serveFlags.http, "http", false, "Shorthand for --transport streamable-http")
	flags.BoolVar(&serveFlags.stateless, "stateless", false, "Shorthand for --transport stateless-http")
	flags.StringVar(&serveFlags.host, "host", "", "Bind address for the HTTP transports (default all interfaces)")
	flags.IntVar(&serveFlags.port, "port", 0, fmt.Sprintf("Listen port for the HTTP transports (default %d)", config.DefaultPort))
	flags.BoolVar(&serveFlags.denyDestructive, "deny-destructive", false, "Refuse calls to destructive tools")
	flags.BoolVar(&serveFlags.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&serveFlags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.StringVar(&serveFlags.configPath, "config", "", "Configuration file (default $HOME/.config/n8n-mcp/config.yaml)")

	cmd.MarkFlagsMutuallyExclusive("transport", "http", "stateless")
}

// selectedTransport folds --http and --stateless into a transport name.
// An empty result leaves the configured transport in place.
func selectedTransport() string {
	switch {
	case serveFlags.http:
		return config.TransportStreamableHTTP
	case serveFlags.stateless:
		return config.TransportStatelessHTTP
	default:
		return serveFlags.transport
	}
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveFlags.debug, serveFlags.logLevel, serveFlags.configPath, GetVersion())
	cfg.Overrides = app.Overrides{
		Transport:       selectedTransport(),
		Host:            serveFlags.host,
		Port:            serveFlags.port,
		DenyDestructive: serveFlags.denyDestructive,
	}
	cfg.Stdin = cmd.InOrStdin()
	cfg.Stdout = cmd.OutOrStdout()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

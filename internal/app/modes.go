package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"n8n-mcp/internal/catalog"
	"n8n-mcp/internal/config"
	"n8n-mcp/internal/server"
	"n8n-mcp/internal/transport"
	"n8n-mcp/pkg/logging"
)

// signalContext derives a context that is cancelled on SIGINT or SIGTERM.
//
// Signal Handling:
//   - SIGINT (Ctrl+C): Triggers graceful shutdown
//   - SIGTERM: Triggers graceful shutdown (common in container environments)
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// runStdio serves a single MCP session over standard input and output.
// Every log line goes to stderr so that stdout carries protocol frames only.
func runStdio(ctx context.Context, cfg *Config, services *Services) error {
	in := cfg.Stdin
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Stdout
	if out == nil {
		out = os.Stdout
	}

	n8nCfg := cfg.N8NMCPConfig.N8N
	inst := services.Factory(&n8nCfg)

	logging.Info("Stdio", "%s running on stdio", server.Name)
	logBanner("Stdio", &n8nCfg)
	logging.Info("Stdio", "Ready for MCP client")

	if err := transport.ServeStdio(ctx, inst, in, out); err != nil {
		logging.Error("Stdio", err, "Stdio server stopped")
		return err
	}
	logging.Info("Stdio", "Shutting down...")
	return nil
}

// runStreamableHTTP serves many concurrent sessions keyed by the Mcp-Session-Id header.
// On shutdown every live session is closed before the listener stops.
func runStreamableHTTP(ctx context.Context, cfg *Config, services *Services) error {
	ln, err := listen(cfg.N8NMCPConfig.Server)
	if err != nil {
		return err
	}

	logging.Info("StatefulHTTP", "%s (HTTP) listening on %s", server.Name, ln.Addr())
	logBanner("StatefulHTTP", &cfg.N8NMCPConfig.N8N)
	logging.Info("StatefulHTTP", "MCP endpoint: %s", endpointURL(cfg.N8NMCPConfig.Server, ln))

	return transport.Serve(ctx, ln, services.Handler, services.Stateful.Close)
}

// runStatelessHTTP serves every request with a fresh server instance.
func runStatelessHTTP(ctx context.Context, cfg *Config, services *Services) error {
	ln, err := listen(cfg.N8NMCPConfig.Server)
	if err != nil {
		return err
	}

	logging.Info("StatelessHTTP", "%s (stateless HTTP) listening on %s", server.Name, ln.Addr())
	if cfg.N8NMCPConfig.N8N.Complete() {
		logBanner("StatelessHTTP", &cfg.N8NMCPConfig.N8N)
	} else {
		logging.Info("StatelessHTTP", "Connection settings are read from the %s and %s query parameters",
			transport.QueryN8NURL, transport.QueryN8NAPIKey)
		logging.Info("StatelessHTTP", "Tools available: %d", catalog.Len())
	}
	logging.Info("StatelessHTTP", "MCP endpoint: %s", endpointURL(cfg.N8NMCPConfig.Server, ln))

	return transport.Serve(ctx, ln, services.Handler, nil)
}

func logBanner(subsystem string, n8nCfg *config.N8NConfig) {
	if n8nCfg.URL != "" {
		logging.Info(subsystem, "Connected to: %s", n8nCfg.URL)
	} else {
		logging.Info(subsystem, "Connected to: (not configured)")
	}
	logging.Info(subsystem, "Tools available: %d", catalog.Len())
}

func listen(sc config.ServerConfig) (net.Listener, error) {
	addr := net.JoinHostPort(sc.Host, strconv.Itoa(sc.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}

// endpointURL renders the address clients should use for the MCP endpoint.
func endpointURL(sc config.ServerConfig, ln net.Listener) string {
	host := sc.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	port := sc.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(host, strconv.Itoa(port)), sc.EndpointPath)
}

// Package app provides application bootstrap and lifecycle management for n8n-mcp.
//
// # Architecture Overview
//
// The app package is the glue between the command line and the serving packages:
//
//  1. **Configuration (`config.go`)**: runtime settings and command line overrides
//  2. **Bootstrap (`bootstrap.go`)**: logging, configuration loading and validation
//  3. **Services (`services.go`)**: the server factory and the HTTP router
//  4. **Modes (`modes.go`)**: stdio, streamable-http and stateless-http execution
//
// # Configuration Precedence
//
// Settings are resolved in this order, later layers winning:
//
//  1. Built-in defaults
//  2. The YAML file ($HOME/.config/n8n-mcp/config.yaml or --config)
//  3. Environment variables (N8N_URL, N8N_API_KEY, N8N_TIMEOUT, N8N_API_PATH, PORT, MCP_TRANSPORT)
//  4. Command line flags
//
// Missing n8n credentials never stop the process. Clients can still list tools,
// and every tool call returns a configuration error until credentials exist.
//
// # Logging
//
// All log output goes to stderr. In stdio mode stdout carries only MCP frames.
//
// # Shutdown
//
// SIGINT and SIGTERM cancel the run context. The HTTP modes close live sessions
// and then stop the listener within a bounded grace period.
package app

package transport

import (
	"n8n-mcp/internal/config"
	"n8n-mcp/internal/server"
)

// Factory builds a server instance for the given connection settings.
// n8n may be nil.
type Factory func(n8n *config.N8NConfig) *server.Instance

// Package config loads n8n-mcp settings.
//
// Settings are layered: built-in defaults, then an optional YAML file,
// then environment variables (N8N_URL, N8N_API_KEY, N8N_TIMEOUT,
// N8N_API_PATH, PORT, MCP_TRANSPORT), then command-line flags applied by
// internal/app.
//
// The n8n URL and API key are optional at load time; tool discovery works
// before credentials exist. Code that needs the backend
// calls N8NConfig.RequireComplete and surfaces the resulting
// *ConfigurationError to the caller.
package config

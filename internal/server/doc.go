// Package server builds the MCP server instances that every transport serves.
//
// An Instance owns one mcp-go MCPServer with the static tool catalog,
// the prompt templates and the server-info resource registered on it, plus
// at most one n8n backend client. The client is created eagerly when the
// instance is built with complete connection settings, otherwise lazily on
// the first tool call that needs it. A tool call without settings fails with
// a configuration error result; the server itself stays usable so that tool
// discovery works before credentials exist.
//
//	┌──────────────────────────────────────────────┐
//	│ Transport (stdio / streamable / stateless)   │
//	└───────────────────────┬──────────────────────┘
//	                        ▼
//	┌──────────────────────────────────────────────┐
//	│ Instance                                     │
//	│   tools/list  → catalog                      │
//	│   tools/call  → guard → client → dispatch    │
//	│   prompts/*, resources/*                     │
//	└───────────────────────┬──────────────────────┘
//	                        ▼
//	                  n8n REST API
//
// Every tool call yields exactly one text content block: the backend
// payload as indented JSON, or "Error: <message>" with isError set.
// Unknown tool names are answered the same way instead of with a JSON-RPC
// fault.
//
// Instances are transport agnostic. Session tokens and per-request
// configuration are handled in internal/transport.
package server

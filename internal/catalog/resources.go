package catalog

import "github.com/mark3labs/mcp-go/mcp"

// ServerInfoURI identifies the server-info resource.
const ServerInfoURI = "n8n://server-info"

// ServerInfoResource describes the connection status resource.
func ServerInfoResource() mcp.Resource {
	return mcp.NewResource(ServerInfoURI, "n8n Server Info",
		mcp.WithResourceDescription("Connection status and available tools for this n8n MCP server"),
		mcp.WithMIMEType("application/json"),
	)
}

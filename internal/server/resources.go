package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"n8n-mcp/internal/catalog"
)

// ServerInfo is the document served at n8n://server-info.
type ServerInfo struct {
	Name           string                   `json:"name"`
	Version        string                   `json:"version"`
	Connected      bool                     `json:"connected"`
	N8NURL         *string                  `json:"n8n_url"`
	ToolsAvailable int                      `json:"tools_available"`
	ToolCategories map[catalog.Category]int `json:"tool_categories"`
}

// Info returns the current server-info document.
func (i *Instance) Info() ServerInfo {
	info := ServerInfo{
		Name:           Name,
		Version:        i.version,
		Connected:      i.Connected(),
		ToolsAvailable: catalog.Len(),
		ToolCategories: catalog.CategoryCounts(),
	}
	if info.Connected {
		u := i.N8NURL()
		info.N8NURL = &u
	}
	return info
}

func (i *Instance) registerResources() {
	i.mcp.AddResource(catalog.ServerInfoResource(), func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		body, err := json.MarshalIndent(i.Info(), "", "  ")
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      catalog.ServerInfoURI,
				MIMEType: "application/json",
				Text:     string(body),
			},
		}, nil
	})
}

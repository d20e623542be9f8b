package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"n8n-mcp/internal/catalog"
)

func (i *Instance) registerPrompts() {
	for _, p := range catalog.Prompts() {
		text := p.Text
		description := p.Prompt.Description
		i.mcp.AddPrompt(p.Prompt, func(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			}), nil
		})
	}
}

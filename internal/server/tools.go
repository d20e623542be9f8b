package server

import (
	"context"
	"errors"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"n8n-mcp/internal/catalog"
	"n8n-mcp/internal/config"
	"n8n-mcp/internal/dispatch"
	"n8n-mcp/internal/formatting"
	"n8n-mcp/internal/metrics"
	"n8n-mcp/pkg/logging"
)

const (
	// unknownToolName receives tools/call requests whose name is not in the
	// catalog. It never appears in tools/list.
	unknownToolName = "_unknown_tool"
	unknownToolArg  = "name"
)

func (i *Instance) registerTools() {
	for _, tool := range catalog.Tools() {
		name := tool.Name
		if !i.table.Has(name) {
			panic("server: no dispatch handler for catalog tool " + name)
		}
		i.mcp.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return i.CallTool(ctx, name, req.GetArguments()), nil
		})
	}

	i.mcp.AddTool(mcp.NewTool(unknownToolName), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, _ := req.GetArguments()[unknownToolArg].(string)
		return i.CallTool(ctx, name, nil), nil
	})
}

// routeUnknownTool rewrites a call to an unregistered tool so that it lands
// on the fallback handler, which answers with an error result.
func (i *Instance) routeUnknownTool(_ context.Context, _ any, req *mcp.CallToolRequest) {
	if i.table.Has(req.Params.Name) {
		return
	}
	req.Params.Arguments = map[string]any{unknownToolArg: req.Params.Name}
	req.Params.Name = unknownToolName
}

// catalogOrder lists tools in catalog order and hides the fallback tool.
func catalogOrder(_ context.Context, tools []mcp.Tool) []mcp.Tool {
	byName := make(map[string]mcp.Tool, len(tools))
	for _, t := range tools {
		byName[t.Name] = t
	}
	out := make([]mcp.Tool, 0, len(tools))
	for _, name := range catalog.Names() {
		if t, ok := byName[name]; ok {
			out = append(out, t)
		}
	}
	return out
}

// CallTool runs one tool call and always returns a result. Failures are
// reported as a single "Error: ..." text block with IsError set.
func (i *Instance) CallTool(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	start := time.Now()
	result := i.callTool(ctx, name, args)

	label := name
	if !i.table.Has(name) {
		label = "unknown"
	}
	metrics.ObserveToolCall(label, result.IsError, time.Since(start))
	return result
}

func (i *Instance) callTool(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	if !i.table.Has(name) {
		logging.Warn("Server", "Call to unknown tool %q", name)
		return errorResult(&dispatch.UnknownToolError{Name: name})
	}

	if i.denyDestructive && catalog.IsDestructive(name) {
		logging.Warn("Server", "Blocked destructive tool call: %s (restart without --deny-destructive to allow)", name)
		return errorResult(&BlockedToolError{Name: name})
	}

	backend, err := i.backend()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if !errors.As(err, &cfgErr) {
			logging.Error("Server", err, "Failed to create n8n client")
		}
		return errorResult(err)
	}

	logging.Debug("Server", "Calling tool %s", name)
	payload, err := i.table.Dispatch(ctx, name, backend, dispatch.Args(args))
	if err != nil {
		logging.Debug("Server", "Tool %s failed: %v", name, err)
		return errorResult(err)
	}

	text, err := formatting.MarshalPretty(payload)
	if err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(text)
}

func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

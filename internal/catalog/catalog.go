// Package catalog declares the static set of MCP tools, prompts and
// resources exposed by n8n-mcp.
//
// The catalog is immutable and independent of any backend configuration:
// it is what an agent sees before credentials exist. Each tool name maps to
// exactly one entry in the dispatch table.
package catalog

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Category groups tools by the n8n resource they manage.
type Category string

const (
	CategoryWorkflows   Category = "workflows"
	CategoryExecutions  Category = "executions"
	CategoryCredentials Category = "credentials"
	CategoryTags        Category = "tags"
	CategoryVariables   Category = "variables"
	CategoryUsers       Category = "users"
)

// Categories lists every category in catalog order.
var Categories = []Category{
	CategoryWorkflows,
	CategoryExecutions,
	CategoryCredentials,
	CategoryTags,
	CategoryVariables,
	CategoryUsers,
}

// Entry is one catalog tool with its category.
type Entry struct {
	Tool     mcp.Tool
	Category Category
}

var (
	entries []Entry
	byName  map[string]Entry
)

func init() {
	groups := []struct {
		category Category
		tools    []mcp.Tool
	}{
		{CategoryWorkflows, workflowTools()},
		{CategoryExecutions, executionTools()},
		{CategoryCredentials, credentialTools()},
		{CategoryTags, tagTools()},
		{CategoryVariables, variableTools()},
		{CategoryUsers, userTools()},
	}

	byName = make(map[string]Entry)
	for _, g := range groups {
		for _, tool := range g.tools {
			if _, dup := byName[tool.Name]; dup {
				panic("catalog: duplicate tool name " + tool.Name)
			}
			e := Entry{Tool: tool, Category: g.category}
			entries = append(entries, e)
			byName[tool.Name] = e
		}
	}
}

// Entries returns the catalog in declaration order. The slice is a copy.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Tools returns the tool descriptors in declaration order.
func Tools() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Tool)
	}
	return out
}

// Names returns every tool name in declaration order.
func Names() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Tool.Name)
	}
	return out
}

// Len returns the number of tools.
func Len() int {
	return len(entries)
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[name]
	return e, ok
}

// IsDestructive reports whether name is annotated as destructive.
func IsDestructive(name string) bool {
	e, ok := byName[name]
	if !ok {
		return false
	}
	hint := e.Tool.Annotations.DestructiveHint
	return hint != nil && *hint
}

// CategoryCounts returns the number of tools per category.
func CategoryCounts() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, e := range entries {
		counts[e.Category]++
	}
	return counts
}

// readOnly builds a tool that only reads from n8n.
func readOnly(name, title, description string, opts ...mcp.ToolOption) mcp.Tool {
	base := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	return mcp.NewTool(name, append(base, opts...)...)
}

// mutating builds a tool that changes state in n8n.
func mutating(name, title, description string, destructive, idempotent bool, opts ...mcp.ToolOption) mcp.Tool {
	base := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(destructive),
		mcp.WithIdempotentHintAnnotation(idempotent),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	return mcp.NewTool(name, append(base, opts...)...)
}

// requiredID is the common "id" argument.
func requiredID(description string) mcp.ToolOption {
	return mcp.WithString("id", mcp.Required(), mcp.Description(description))
}

// Package formatting renders the tool catalog and JSON payloads for humans.
//
// The CLI uses it to print the catalog as a table, JSON or YAML; the MCP
// server uses MarshalPretty for tool results.
package formatting

import (
	"fmt"
	"io"

	"n8n-mcp/internal/catalog"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // Rich table output
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
)

// Formats lists the accepted output formats.
var Formats = []OutputFormat{FormatTable, FormatJSON, FormatYAML}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Color  bool // Enable colored output (table only)
}

// Formatter renders catalog data.
type Formatter interface {
	FormatTools(w io.Writer, entries []catalog.Entry) error
	FormatPrompts(w io.Writer, prompts []catalog.Prompt) error
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (OutputFormat, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
}

// New returns the formatter for options.Format. Unknown formats fall back to table.
func New(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{options: options}
	}
}

// ToolSummary is the flattened view of a catalog tool used by every format.
type ToolSummary struct {
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	ReadOnly    bool     `json:"readOnly" yaml:"readOnly"`
	Destructive bool     `json:"destructive" yaml:"destructive"`
	Idempotent  bool     `json:"idempotent" yaml:"idempotent"`
	Required    []string `json:"required" yaml:"required"`
	Optional    []string `json:"optional" yaml:"optional"`
}

// PromptSummary is the flattened view of a prompt.
type PromptSummary struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Summarize flattens catalog entries.
func Summarize(entries []catalog.Entry) []ToolSummary {
	out := make([]ToolSummary, 0, len(entries))
	for _, e := range entries {
		t := e.Tool
		required := map[string]bool{}
		for _, r := range t.InputSchema.Required {
			required[r] = true
		}
		var optional []string
		for _, name := range sortedKeys(t.InputSchema.Properties) {
			if !required[name] {
				optional = append(optional, name)
			}
		}
		out = append(out, ToolSummary{
			Name:        t.Name,
			Category:    string(e.Category),
			Title:       t.Annotations.Title,
			Description: t.Description,
			ReadOnly:    boolValue(t.Annotations.ReadOnlyHint),
			Destructive: boolValue(t.Annotations.DestructiveHint),
			Idempotent:  boolValue(t.Annotations.IdempotentHint),
			Required:    append([]string{}, t.InputSchema.Required...),
			Optional:    append([]string{}, optional...),
		})
	}
	return out
}

func summarizePrompts(prompts []catalog.Prompt) []PromptSummary {
	out := make([]PromptSummary, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, PromptSummary{Name: p.Prompt.Name, Description: p.Prompt.Description})
	}
	return out
}

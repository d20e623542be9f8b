package formatting

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"n8n-mcp/internal/catalog"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct{}

// FormatTools writes the tool summaries as a YAML document.
func (f *YAMLFormatter) FormatTools(w io.Writer, entries []catalog.Entry) error {
	return f.write(w, map[string]interface{}{
		"tools": Summarize(entries),
		"count": len(entries),
	})
}

// FormatPrompts writes the prompt summaries as a YAML document.
func (f *YAMLFormatter) FormatPrompts(w io.Writer, prompts []catalog.Prompt) error {
	return f.write(w, map[string]interface{}{
		"prompts": summarizePrompts(prompts),
		"count":   len(prompts),
	})
}

func (f *YAMLFormatter) write(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

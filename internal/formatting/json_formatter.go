package formatting

import (
	"fmt"
	"io"

	"n8n-mcp/internal/catalog"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct{}

// FormatTools writes {"tools": [...], "count": n}.
func (f *JSONFormatter) FormatTools(w io.Writer, entries []catalog.Entry) error {
	return f.write(w, map[string]interface{}{
		"tools": Summarize(entries),
		"count": len(entries),
	})
}

// FormatPrompts writes {"prompts": [...], "count": n}.
func (f *JSONFormatter) FormatPrompts(w io.Writer, prompts []catalog.Prompt) error {
	return f.write(w, map[string]interface{}{
		"prompts": summarizePrompts(prompts),
		"count":   len(prompts),
	})
}

func (f *JSONFormatter) write(w io.Writer, v interface{}) error {
	s, err := MarshalPretty(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

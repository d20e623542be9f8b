package formatting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"n8n-mcp/internal/catalog"
	pkgstrings "n8n-mcp/pkg/strings"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// FormatTools renders one row per tool.
func (f *TableFormatter) FormatTools(w io.Writer, entries []catalog.Entry) error {
	if len(entries) == 0 {
		_, err := io.WriteString(w, f.formatEmptyMessage("No tools found"))
		return err
	}

	t := f.createTable(w)
	t.AppendHeader(table.Row{
		f.header("NAME"),
		f.header("CATEGORY"),
		f.header("TITLE"),
		f.header("FLAGS"),
		f.header("REQUIRED"),
		f.header("OPTIONAL"),
	})

	for _, s := range Summarize(entries) {
		t.AppendRow(table.Row{
			s.Name,
			s.Category,
			s.Title,
			f.flags(s),
			strings.Join(s.Required, ", "),
			strings.Join(s.Optional, ", "),
		})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d tools", len(entries))})
	t.Render()
	return nil
}

// FormatPrompts renders one row per prompt.
func (f *TableFormatter) FormatPrompts(w io.Writer, prompts []catalog.Prompt) error {
	if len(prompts) == 0 {
		_, err := io.WriteString(w, f.formatEmptyMessage("No prompts found"))
		return err
	}

	t := f.createTable(w)
	t.AppendHeader(table.Row{f.header("PROMPT"), f.header("DESCRIPTION")})
	for _, p := range summarizePrompts(prompts) {
		t.AppendRow(table.Row{p.Name, pkgstrings.Truncate(p.Description, pkgstrings.DescriptionWidth)})
	}
	t.Render()
	return nil
}

// Helper methods

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(s string) string {
	if !f.options.Color {
		return s
	}
	return text.FgHiCyan.Sprint(s)
}

// flags abbreviates the annotation hints: RO read-only, D destructive,
// I idempotent.
func (f *TableFormatter) flags(s ToolSummary) string {
	var parts []string
	if s.ReadOnly {
		parts = append(parts, f.color(text.FgGreen, "RO"))
	}
	if s.Destructive {
		parts = append(parts, f.color(text.FgRed, "D"))
	}
	if s.Idempotent {
		parts = append(parts, "I")
	}
	return strings.Join(parts, " ")
}

func (f *TableFormatter) color(c text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return c.Sprint(s)
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(message string) string {
	return f.color(text.FgYellow, message) + "\n"
}

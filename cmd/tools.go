package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"n8n-mcp/internal/catalog"
	"n8n-mcp/internal/formatting"
)

type toolsOptions struct {
	output   string
	category string
	prompts  bool
	noColor  bool
}

func newToolsCmd() *cobra.Command {
	opts := &toolsOptions{}
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools this server offers",
		Long: `Prints the tool catalog with each tool's category, hints and arguments.
No n8n connection is needed.

Examples:
  n8n-mcp tools
  n8n-mcp tools --category workflows
  n8n-mcp tools --output json
  n8n-mcp tools --prompts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", string(formatting.FormatTable), "Output format: table, json or yaml")
	cmd.Flags().StringVar(&opts.category, "category", "", "Only show tools of this category")
	cmd.Flags().BoolVar(&opts.prompts, "prompts", false, "List prompts instead of tools")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored table output")
	return cmd
}

func runTools(cmd *cobra.Command, opts *toolsOptions) error {
	format, err := formatting.ParseFormat(opts.output)
	if err != nil {
		return err
	}
	formatter := formatting.New(formatting.Options{Format: format, Color: !opts.noColor})

	if opts.prompts {
		return formatter.FormatPrompts(cmd.OutOrStdout(), catalog.Prompts())
	}

	entries := catalog.Entries()
	if opts.category != "" {
		category, err := parseCategory(opts.category)
		if err != nil {
			return err
		}
		filtered := entries[:0]
		for _, e := range entries {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	return formatter.FormatTools(cmd.OutOrStdout(), entries)
}

func parseCategory(s string) (catalog.Category, error) {
	names := make([]string, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
		names = append(names, string(c))
	}
	return "", fmt.Errorf("unknown category %q (want one of %s)", s, strings.Join(names, ", "))
}

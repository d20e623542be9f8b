package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"n8n-mcp/internal/server"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of n8n-mcp",
		Long:  `All software has versions. This is n8n-mcp's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "n8n-mcp version %s\n", rootCmd.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "MCP server name: %s\n", server.Name)
		},
	}
}

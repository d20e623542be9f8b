package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"n8n-mcp/internal/config"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfiguration indicates invalid or missing configuration.
	ExitCodeConfiguration = 2
)

// rootCmd represents the base command for the n8n-mcp application.
// Without a subcommand it behaves like 'n8n-mcp serve'.
var rootCmd = &cobra.Command{
	Use:   "n8n-mcp",
	Short: "Manage an n8n instance from any MCP client",
	Long: `n8n-mcp exposes the n8n REST API as Model Context Protocol tools.

Workflows, executions, credentials, tags, variables and users can be managed
by AI assistants over stdio, streamable HTTP or stateless HTTP.

Run without a subcommand to serve MCP on stdio:

  N8N_URL=https://n8n.example.com N8N_API_KEY=your_key n8n-mcp

Serve over HTTP instead:

  N8N_URL=https://n8n.example.com N8N_API_KEY=your_key n8n-mcp --http`,
	Args: cobra.NoArgs,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "n8n-mcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var missing *config.ConfigurationError
	if errors.As(err, &missing) {
		return ExitCodeConfiguration
	}

	var invalid config.ValidationErrors
	if errors.As(err, &invalid) {
		return ExitCodeConfiguration
	}

	return ExitCodeError
}

func init() {
	// Set here rather than in the literal: runServe reads rootCmd.Version.
	rootCmd.RunE = runServe
	addServeFlags(rootCmd)

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newVersionCmd())
}

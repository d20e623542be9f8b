package catalog

import "github.com/mark3labs/mcp-go/mcp"

const (
	ToolListVariables  = "n8n_list_variables"
	ToolCreateVariable = "n8n_create_variable"
	ToolUpdateVariable = "n8n_update_variable"
	ToolDeleteVariable = "n8n_delete_variable"
)

func variableTools() []mcp.Tool {
	return []mcp.Tool{
		readOnly(ToolListVariables, "List Variables",
			"Retrieve all instance variables with their keys and values. Variables are shared across workflows via $vars. Use this to check existing configuration before creating or changing variables.",
		),
		mutating(ToolCreateVariable, "Create Variable",
			"Create a new instance variable available to every workflow as $vars.<key>. Keys must be unique. Useful for environment names, base URLs, or feature flags shared between workflows.",
			false, false,
			mcp.WithString("key", mcp.Required(), mcp.Description("Variable key (letters, numbers, underscores)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Variable value")),
		),
		mutating(ToolUpdateVariable, "Update Variable",
			"Change the key or value of an existing variable. Workflows read the new value on their next execution.",
			false, true,
			requiredID("Variable ID from list_variables"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Variable key")),
			mcp.WithString("value", mcp.Required(), mcp.Description("New variable value")),
		),
		mutating(ToolDeleteVariable, "Delete Variable",
			"Permanently remove an instance variable. Workflows that still reference it will receive an empty value. Use with caution.",
			true, true,
			requiredID("Variable ID to permanently delete"),
		),
	}
}

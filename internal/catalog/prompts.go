package catalog

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	PromptManageWorkflows = "manage-workflows"
	PromptDebugExecution  = "debug-execution"
)

// Prompt is a static prompt template with a single user message.
type Prompt struct {
	Prompt mcp.Prompt
	Text   string
}

// Prompts returns the prompt templates offered to clients.
func Prompts() []Prompt {
	return []Prompt{
		{
			Prompt: mcp.NewPrompt(PromptManageWorkflows,
				mcp.WithPromptDescription("Guide for managing n8n workflows: list, create, activate, execute, and organize with tags"),
			),
			Text: strings.Join([]string{
				"You are an n8n workflow management assistant. Help me manage my n8n automations.",
				"",
				"Available actions:",
				"1. **List workflows**: Use n8n_list_workflows to see all automations",
				"2. **Inspect workflow**: Use n8n_get_workflow to see nodes and connections",
				"3. **Create workflow**: Use n8n_create_workflow with name, nodes, and connections",
				"4. **Activate/Deactivate**: Use n8n_activate_workflow or n8n_deactivate_workflow",
				"5. **Execute manually**: Use n8n_execute_workflow to test with custom data",
				"6. **Organize with tags**: Use n8n_list_tags, n8n_create_tag, n8n_update_workflow_tags",
				"",
				"Start by listing my current workflows.",
			}, "\n"),
		},
		{
			Prompt: mcp.NewPrompt(PromptDebugExecution,
				mcp.WithPromptDescription("Step-by-step guide to diagnose and fix failed n8n workflow executions"),
			),
			Text: strings.Join([]string{
				"You are an n8n debugging assistant. Help me find and fix failed workflow executions.",
				"",
				"Debugging steps:",
				"1. **Find failures**: Use n8n_list_executions to find executions with error status",
				"2. **Get details**: Use n8n_get_execution to see the full error message and which node failed",
				"3. **Inspect workflow**: Use n8n_get_workflow to understand the workflow structure",
				"4. **Check credentials**: Use n8n_get_credential_schema to verify required fields",
				"5. **Retry**: Use n8n_retry_execution to rerun after fixing the issue",
				"6. **Clean up**: Use n8n_delete_execution to remove old test runs",
				"",
				"Start by listing recent executions to find any failures.",
			}, "\n"),
		},
	}
}

package catalog

import "github.com/mark3labs/mcp-go/mcp"

const (
	ToolListExecutions  = "n8n_list_executions"
	ToolGetExecution    = "n8n_get_execution"
	ToolDeleteExecution = "n8n_delete_execution"
	ToolRetryExecution  = "n8n_retry_execution"
)

func executionTools() []mcp.Tool {
	return []mcp.Tool{
		readOnly(ToolListExecutions, "List Executions",
			"Retrieve execution history with status, timestamps, and workflow info. Filter by workflow ID or get all executions. Returns execution ID, status (success/error/running), start time, and workflow name. Use this to monitor automation performance or debug failures.",
			mcp.WithString("workflowId", mcp.Description("Filter executions for specific workflow (optional, omit for all)")),
			mcp.WithString("status", mcp.Enum("success", "error", "waiting", "running", "canceled"), mcp.Description("Filter by execution status (optional)")),
		),
		readOnly(ToolGetExecution, "Get Execution",
			"Get detailed execution data including node outputs, error messages, and timing. Returns full execution log with data passed between nodes. Essential for debugging failed workflows or understanding data flow.",
			requiredID("Execution ID from list_executions"),
		),
		mutating(ToolDeleteExecution, "Delete Execution",
			"Remove execution record from history to save storage or clean up test runs. Permanently deletes execution data. Use after debugging or to maintain clean execution logs.",
			true, true,
			requiredID("Execution ID to permanently remove"),
		),
		mutating(ToolRetryExecution, "Retry Execution",
			"Rerun a failed execution with the same input data. Useful for transient errors like network timeouts. Creates new execution while preserving original execution log. Only works with failed executions.",
			false, false,
			requiredID("Failed execution ID to retry"),
		),
	}
}

package catalog

import "github.com/mark3labs/mcp-go/mcp"

const (
	ToolListWorkflows      = "n8n_list_workflows"
	ToolGetWorkflow        = "n8n_get_workflow"
	ToolCreateWorkflow     = "n8n_create_workflow"
	ToolUpdateWorkflow     = "n8n_update_workflow"
	ToolDeleteWorkflow     = "n8n_delete_workflow"
	ToolActivateWorkflow   = "n8n_activate_workflow"
	ToolDeactivateWorkflow = "n8n_deactivate_workflow"
	ToolExecuteWorkflow    = "n8n_execute_workflow"
	ToolGetWorkflowTags    = "n8n_get_workflow_tags"
	ToolUpdateWorkflowTags = "n8n_update_workflow_tags"
)

func workflowTools() []mcp.Tool {
	return []mcp.Tool{
		readOnly(ToolListWorkflows, "List Workflows",
			"Retrieve all workflows with their status, tags, and metadata. Returns workflow ID, name, active status, creation date, and tags. Use this to browse available automations or find a specific workflow by name.",
			mcp.WithBoolean("active", mcp.Description("Only return active (true) or inactive (false) workflows (optional)")),
			mcp.WithString("tags", mcp.Description("Comma-separated tag names to filter by (optional)")),
		),
		readOnly(ToolGetWorkflow, "Get Workflow",
			"Get complete workflow definition including all nodes, connections, and settings. Returns full workflow JSON with node configurations and data flow. Use this to inspect workflow logic before modifying or executing.",
			requiredID("Workflow ID from list_workflows"),
		),
		mutating(ToolCreateWorkflow, "Create Workflow",
			"Create a new automation workflow with nodes and connections. Provide workflow name, node array, and connection object. Optionally activate immediately. Returns new workflow with assigned ID.",
			false, false,
			mcp.WithString("name", mcp.Required(), mcp.Description("Descriptive workflow name")),
			mcp.WithArray("nodes", mcp.Required(), mcp.Description("Array of node objects with type, parameters, position")),
			mcp.WithObject("connections", mcp.Required(), mcp.Description("Connection map linking node outputs to inputs")),
			mcp.WithBoolean("active", mcp.Description("Start workflow immediately (default: false)")),
		),
		mutating(ToolUpdateWorkflow, "Update Workflow",
			"Modify existing workflow structure or settings. Update workflow name, add/remove nodes, or change connections. Workflow must be deactivated first for structure changes. Returns updated workflow.",
			false, true,
			requiredID("Workflow ID to modify"),
			mcp.WithString("name", mcp.Description("New workflow name (optional)")),
			mcp.WithArray("nodes", mcp.Description("Updated node array (optional)")),
			mcp.WithObject("connections", mcp.Description("Updated connection map (optional)")),
		),
		mutating(ToolDeleteWorkflow, "Delete Workflow",
			"Permanently delete a workflow and all associated execution history. This action cannot be undone. Workflow must be deactivated first. Use with caution.",
			true, true,
			requiredID("Workflow ID to permanently delete"),
		),
		mutating(ToolActivateWorkflow, "Activate Workflow",
			"Start a workflow to listen for triggers (webhooks, schedules, etc). Activating enables automatic execution when trigger conditions are met. Workflow must have valid trigger nodes.",
			false, true,
			requiredID("Workflow ID to activate"),
		),
		mutating(ToolDeactivateWorkflow, "Deactivate Workflow",
			"Stop a workflow from listening to triggers. Deactivating prevents automatic execution but preserves workflow configuration. Use before making structure changes.",
			false, true,
			requiredID("Workflow ID to deactivate"),
		),
		mutating(ToolExecuteWorkflow, "Execute Workflow",
			"Manually trigger workflow execution with optional input data. Useful for testing or API-driven workflows without webhooks. Returns execution ID to track progress. Does not require workflow to be active.",
			false, false,
			requiredID("Workflow ID to execute"),
			mcp.WithObject("data", mcp.Description("Input data passed to workflow start node (optional)")),
		),
		readOnly(ToolGetWorkflowTags, "Get Workflow Tags",
			"Retrieve tags assigned to a workflow for categorization. Returns array of tag names. Use this to understand workflow organization before bulk operations.",
			requiredID("Workflow ID"),
		),
		mutating(ToolUpdateWorkflowTags, "Update Workflow Tags",
			`Assign tags to a workflow for organization and filtering. Replaces existing tags completely. Use tags like "production", "testing", or team names. Create missing tags automatically.`,
			false, true,
			requiredID("Workflow ID"),
			mcp.WithArray("tags", mcp.Required(), mcp.WithStringItems(), mcp.Description("Complete array of tag names (replaces existing)")),
		),
	}
}

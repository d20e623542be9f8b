package catalog

import "github.com/mark3labs/mcp-go/mcp"

const (
	ToolListTags  = "n8n_list_tags"
	ToolGetTag    = "n8n_get_tag"
	ToolCreateTag = "n8n_create_tag"
	ToolUpdateTag = "n8n_update_tag"
	ToolDeleteTag = "n8n_delete_tag"
)

func tagTools() []mcp.Tool {
	return []mcp.Tool{
		readOnly(ToolListTags, "List Tags",
			"Retrieve all available tags for workflow organization. Returns tag ID and name. Use this before assigning tags to workflows or to see your tagging structure.",
		),
		readOnly(ToolGetTag, "Get Tag",
			"Get tag details including ID and name. Rarely needed - use list_tags for most cases. Useful for validating tag existence before bulk operations.",
			requiredID("Tag ID from list_tags"),
		),
		mutating(ToolCreateTag, "Create Tag",
			`Create new tag for workflow categorization. Use meaningful names like "production", "staging", "team-marketing", or "urgent". Tags help filter and organize workflows.`,
			false, false,
			mcp.WithString("name", mcp.Required(), mcp.Description("Tag name (case-sensitive, spaces allowed)")),
		),
		mutating(ToolUpdateTag, "Update Tag",
			"Rename an existing tag. All workflows using this tag will automatically reflect the new name. Use this to standardize tag naming across workflows.",
			false, true,
			requiredID("Tag ID to rename"),
			mcp.WithString("name", mcp.Required(), mcp.Description("New tag name")),
		),
		mutating(ToolDeleteTag, "Delete Tag",
			"Remove tag from system. Automatically removes this tag from all workflows using it. Tag removal does not affect workflows themselves, only the tag association.",
			true, true,
			requiredID("Tag ID to permanently delete"),
		),
	}
}

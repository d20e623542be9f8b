package catalog

import "github.com/mark3labs/mcp-go/mcp"

const (
	ToolListUsers      = "n8n_list_users"
	ToolGetUser        = "n8n_get_user"
	ToolDeleteUser     = "n8n_delete_user"
	ToolUpdateUserRole = "n8n_update_user_role"
)

// User tools require an API key belonging to the instance owner.
func userTools() []mcp.Tool {
	return []mcp.Tool{
		readOnly(ToolListUsers, "List Users",
			"Retrieve all n8n users with their roles and status. Only available to instance owner. Returns user ID, email, role (owner/admin/member), and disabled status. Use this for user management and auditing.",
		),
		readOnly(ToolGetUser, "Get User",
			"Get detailed user information by ID or email. Only available to instance owner. Returns user profile including role and account status. Use this to verify user details before role changes.",
			mcp.WithString("identifier", mcp.Required(), mcp.Description("User ID or email address")),
		),
		mutating(ToolDeleteUser, "Delete User",
			"Remove user from n8n instance. Only available to instance owner. Cannot delete the owner account. Deleted users lose access immediately. Workflows created by this user remain intact.",
			true, true,
			requiredID("User ID to permanently delete (not email)"),
		),
		mutating(ToolUpdateUserRole, "Update User Role",
			"Change user permission level. Only available to instance owner. Admin can manage workflows and credentials. Member has view-only or limited edit access. Cannot change owner role.",
			false, true,
			requiredID("User ID to modify"),
			mcp.WithString("role", mcp.Required(), mcp.Enum("admin", "member"), mcp.Description("New permission level")),
		),
	}
}

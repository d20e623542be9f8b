package catalog

import "github.com/mark3labs/mcp-go/mcp"

const (
	ToolCreateCredential    = "n8n_create_credential"
	ToolUpdateCredential    = "n8n_update_credential"
	ToolDeleteCredential    = "n8n_delete_credential"
	ToolGetCredentialSchema = "n8n_get_credential_schema"
)

func credentialTools() []mcp.Tool {
	return []mcp.Tool{
		mutating(ToolCreateCredential, "Create Credential",
			"Store new API credentials for services like GitHub, Slack, or databases. Provide credential type, descriptive name, and authentication data. Use get_credential_schema first to see required fields for each type.",
			false, false,
			mcp.WithString("name", mcp.Required(), mcp.Description(`Descriptive name (e.g., "Production GitHub Token")`)),
			mcp.WithString("type", mcp.Required(), mcp.Description("Credential type from get_credential_schema (e.g., githubApi, slackApi)")),
			mcp.WithObject("data", mcp.Required(), mcp.Description("Authentication data (API keys, OAuth tokens, passwords)")),
		),
		mutating(ToolUpdateCredential, "Update Credential",
			"Update credential name or authentication data. Use this when rotating API keys or changing OAuth tokens. Workflows using this credential will use updated auth immediately.",
			false, true,
			requiredID("Credential ID to update"),
			mcp.WithString("name", mcp.Description("New name (optional)")),
			mcp.WithObject("data", mcp.Description("Updated authentication data (optional)")),
		),
		mutating(ToolDeleteCredential, "Delete Credential",
			"Remove stored credential. Cannot delete credentials currently used in active workflows. Deactivate dependent workflows first. Use with caution as this may break workflows.",
			true, true,
			requiredID("Credential ID to permanently delete"),
		),
		readOnly(ToolGetCredentialSchema, "Get Credential Schema",
			"Get required fields and format for a credential type before creating it. Returns field names, types, and whether fields are required. Use this to understand what authentication data is needed.",
			mcp.WithString("credentialType", mcp.Required(), mcp.Description("Credential type (e.g., githubApi, googleDriveOAuth2Api, httpBasicAuth)")),
		),
	}
}

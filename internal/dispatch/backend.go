package dispatch

import (
	"context"

	"n8n-mcp/internal/n8n"
)

// Backend is the set of n8n operations reachable from a tool call.
// *n8n.Client implements it.
type Backend interface {
	ListWorkflows(ctx context.Context, filter n8n.WorkflowFilter) (any, error)
	GetWorkflow(ctx context.Context, id string) (any, error)
	CreateWorkflow(ctx context.Context, workflow map[string]any) (any, error)
	UpdateWorkflow(ctx context.Context, id string, workflow map[string]any) (any, error)
	DeleteWorkflow(ctx context.Context, id string) (any, error)
	ActivateWorkflow(ctx context.Context, id string) (any, error)
	DeactivateWorkflow(ctx context.Context, id string) (any, error)
	ExecuteWorkflow(ctx context.Context, id string, data any) (any, error)
	GetWorkflowTags(ctx context.Context, id string) (any, error)
	UpdateWorkflowTags(ctx context.Context, id string, tags []string) (any, error)

	ListExecutions(ctx context.Context, filter n8n.ExecutionFilter) (any, error)
	GetExecution(ctx context.Context, id string) (any, error)
	DeleteExecution(ctx context.Context, id string) (any, error)
	RetryExecution(ctx context.Context, id string) (any, error)

	CreateCredential(ctx context.Context, credential map[string]any) (any, error)
	UpdateCredential(ctx context.Context, id string, credential map[string]any) (any, error)
	DeleteCredential(ctx context.Context, id string) (any, error)
	GetCredentialSchema(ctx context.Context, credentialType string) (any, error)

	ListTags(ctx context.Context) (any, error)
	GetTag(ctx context.Context, id string) (any, error)
	CreateTag(ctx context.Context, name string) (any, error)
	UpdateTag(ctx context.Context, id, name string) (any, error)
	DeleteTag(ctx context.Context, id string) (any, error)

	ListVariables(ctx context.Context) (any, error)
	CreateVariable(ctx context.Context, key string, value any) (any, error)
	UpdateVariable(ctx context.Context, id, key string, value any) (any, error)
	DeleteVariable(ctx context.Context, id string) (any, error)

	ListUsers(ctx context.Context) (any, error)
	GetUser(ctx context.Context, identifier string) (any, error)
	DeleteUser(ctx context.Context, id string) (any, error)
	UpdateUserRole(ctx context.Context, id, role string) (any, error)
}

var _ Backend = (*n8n.Client)(nil)

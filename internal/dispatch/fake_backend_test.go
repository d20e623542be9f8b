package dispatch

import (
	"context"

	"n8n-mcp/internal/n8n"
)

type call struct {
	Method string
	Args   []any
}

// recordingBackend records each invocation and returns a canned result.
type recordingBackend struct {
	calls  []call
	result any
	err    error
}

func (r *recordingBackend) record(method string, args ...any) (any, error) {
	r.calls = append(r.calls, call{Method: method, Args: args})
	return r.result, r.err
}

func (r *recordingBackend) ListWorkflows(_ context.Context, f n8n.WorkflowFilter) (any, error) {
	return r.record("ListWorkflows", f)
}
func (r *recordingBackend) GetWorkflow(_ context.Context, id string) (any, error) {
	return r.record("GetWorkflow", id)
}
func (r *recordingBackend) CreateWorkflow(_ context.Context, w map[string]any) (any, error) {
	return r.record("CreateWorkflow", w)
}
func (r *recordingBackend) UpdateWorkflow(_ context.Context, id string, w map[string]any) (any, error) {
	return r.record("UpdateWorkflow", id, w)
}
func (r *recordingBackend) DeleteWorkflow(_ context.Context, id string) (any, error) {
	return r.record("DeleteWorkflow", id)
}
func (r *recordingBackend) ActivateWorkflow(_ context.Context, id string) (any, error) {
	return r.record("ActivateWorkflow", id)
}
func (r *recordingBackend) DeactivateWorkflow(_ context.Context, id string) (any, error) {
	return r.record("DeactivateWorkflow", id)
}
func (r *recordingBackend) ExecuteWorkflow(_ context.Context, id string, data any) (any, error) {
	return r.record("ExecuteWorkflow", id, data)
}
func (r *recordingBackend) GetWorkflowTags(_ context.Context, id string) (any, error) {
	return r.record("GetWorkflowTags", id)
}
func (r *recordingBackend) UpdateWorkflowTags(_ context.Context, id string, tags []string) (any, error) {
	return r.record("UpdateWorkflowTags", id, tags)
}
func (r *recordingBackend) ListExecutions(_ context.Context, f n8n.ExecutionFilter) (any, error) {
	return r.record("ListExecutions", f)
}
func (r *recordingBackend) GetExecution(_ context.Context, id string) (any, error) {
	return r.record("GetExecution", id)
}
func (r *recordingBackend) DeleteExecution(_ context.Context, id string) (any, error) {
	return r.record("DeleteExecution", id)
}
func (r *recordingBackend) RetryExecution(_ context.Context, id string) (any, error) {
	return r.record("RetryExecution", id)
}
func (r *recordingBackend) CreateCredential(_ context.Context, c map[string]any) (any, error) {
	return r.record("CreateCredential", c)
}
func (r *recordingBackend) UpdateCredential(_ context.Context, id string, c map[string]any) (any, error) {
	return r.record("UpdateCredential", id, c)
}
func (r *recordingBackend) DeleteCredential(_ context.Context, id string) (any, error) {
	return r.record("DeleteCredential", id)
}
func (r *recordingBackend) GetCredentialSchema(_ context.Context, t string) (any, error) {
	return r.record("GetCredentialSchema", t)
}
func (r *recordingBackend) ListTags(_ context.Context) (any, error) {
	return r.record("ListTags")
}
func (r *recordingBackend) GetTag(_ context.Context, id string) (any, error) {
	return r.record("GetTag", id)
}
func (r *recordingBackend) CreateTag(_ context.Context, name string) (any, error) {
	return r.record("CreateTag", name)
}
func (r *recordingBackend) UpdateTag(_ context.Context, id, name string) (any, error) {
	return r.record("UpdateTag", id, name)
}
func (r *recordingBackend) DeleteTag(_ context.Context, id string) (any, error) {
	return r.record("DeleteTag", id)
}
func (r *recordingBackend) ListVariables(_ context.Context) (any, error) {
	return r.record("ListVariables")
}
func (r *recordingBackend) CreateVariable(_ context.Context, key string, value any) (any, error) {
	return r.record("CreateVariable", key, value)
}
func (r *recordingBackend) UpdateVariable(_ context.Context, id, key string, value any) (any, error) {
	return r.record("UpdateVariable", id, key, value)
}
func (r *recordingBackend) DeleteVariable(_ context.Context, id string) (any, error) {
	return r.record("DeleteVariable", id)
}
func (r *recordingBackend) ListUsers(_ context.Context) (any, error) {
	return r.record("ListUsers")
}
func (r *recordingBackend) GetUser(_ context.Context, identifier string) (any, error) {
	return r.record("GetUser", identifier)
}
func (r *recordingBackend) DeleteUser(_ context.Context, id string) (any, error) {
	return r.record("DeleteUser", id)
}
func (r *recordingBackend) UpdateUserRole(_ context.Context, id, role string) (any, error) {
	return r.record("UpdateUserRole", id, role)
}

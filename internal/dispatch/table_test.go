package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"n8n-mcp/internal/catalog"
	"n8n-mcp/internal/n8n"
)

func TestTableCoversCatalog(t *testing.T) {
	table := NewTable()
	assert.ElementsMatch(t, catalog.Names(), table.Names())
	for _, name := range catalog.Names() {
		assert.True(t, table.Has(name), name)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	b := &recordingBackend{}
	_, err := NewTable().Dispatch(context.Background(), "n8n_launch_rocket", b, Args{})

	var unknown *UnknownToolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "n8n_launch_rocket", unknown.Name)
	assert.Equal(t, "Unknown tool: n8n_launch_rocket", err.Error())
	assert.Empty(t, b.calls)
}

func TestDispatchArgumentMapping(t *testing.T) {
	active := true
	tests := []struct {
		tool string
		args Args
		want call
	}{
		{catalog.ToolListWorkflows, Args{}, call{"ListWorkflows", []any{n8n.WorkflowFilter{}}}},
		{catalog.ToolListWorkflows, Args{"active": true, "tags": "prod"}, call{"ListWorkflows", []any{n8n.WorkflowFilter{Active: &active, Tags: "prod"}}}},
		{catalog.ToolGetWorkflow, Args{"id": "7"}, call{"GetWorkflow", []any{"7"}}},
		{catalog.ToolGetWorkflow, Args{"id": float64(42)}, call{"GetWorkflow", []any{"42"}}},
		{catalog.ToolCreateWorkflow, Args{"name": "w", "nodes": []any{}, "connections": map[string]any{}},
			call{"CreateWorkflow", []any{map[string]any{"name": "w", "nodes": []any{}, "connections": map[string]any{}}}}},
		{catalog.ToolUpdateWorkflow, Args{"id": "7", "name": "renamed"}, call{"UpdateWorkflow", []any{"7", map[string]any{"name": "renamed"}}}},
		{catalog.ToolDeleteWorkflow, Args{"id": "7"}, call{"DeleteWorkflow", []any{"7"}}},
		{catalog.ToolActivateWorkflow, Args{"id": "7"}, call{"ActivateWorkflow", []any{"7"}}},
		{catalog.ToolDeactivateWorkflow, Args{"id": "7"}, call{"DeactivateWorkflow", []any{"7"}}},
		{catalog.ToolExecuteWorkflow, Args{"id": "7"}, call{"ExecuteWorkflow", []any{"7", nil}}},
		{catalog.ToolExecuteWorkflow, Args{"id": "7", "data": map[string]any{"x": 1}}, call{"ExecuteWorkflow", []any{"7", map[string]any{"x": 1}}}},
		{catalog.ToolGetWorkflowTags, Args{"id": "7"}, call{"GetWorkflowTags", []any{"7"}}},
		{catalog.ToolUpdateWorkflowTags, Args{"id": "42", "tags": []any{"prod", "urgent"}}, call{"UpdateWorkflowTags", []any{"42", []string{"prod", "urgent"}}}},
		{catalog.ToolUpdateWorkflowTags, Args{"id": "42", "tags": []any{}}, call{"UpdateWorkflowTags", []any{"42", []string{}}}},

		{catalog.ToolListExecutions, Args{}, call{"ListExecutions", []any{n8n.ExecutionFilter{}}}},
		{catalog.ToolListExecutions, Args{"workflowId": "7", "status": "error"}, call{"ListExecutions", []any{n8n.ExecutionFilter{WorkflowID: "7", Status: "error"}}}},
		{catalog.ToolGetExecution, Args{"id": "9"}, call{"GetExecution", []any{"9"}}},
		{catalog.ToolDeleteExecution, Args{"id": "9"}, call{"DeleteExecution", []any{"9"}}},
		{catalog.ToolRetryExecution, Args{"id": "9"}, call{"RetryExecution", []any{"9"}}},

		{catalog.ToolCreateCredential, Args{"name": "gh", "type": "githubApi", "data": map[string]any{"token": "t"}},
			call{"CreateCredential", []any{map[string]any{"name": "gh", "type": "githubApi", "data": map[string]any{"token": "t"}}}}},
		{catalog.ToolUpdateCredential, Args{"id": "3", "data": map[string]any{"token": "u"}}, call{"UpdateCredential", []any{"3", map[string]any{"data": map[string]any{"token": "u"}}}}},
		{catalog.ToolDeleteCredential, Args{"id": "3"}, call{"DeleteCredential", []any{"3"}}},
		{catalog.ToolGetCredentialSchema, Args{"credentialType": "slackApi"}, call{"GetCredentialSchema", []any{"slackApi"}}},

		{catalog.ToolListTags, nil, call{"ListTags", nil}},
		{catalog.ToolGetTag, Args{"id": "1"}, call{"GetTag", []any{"1"}}},
		{catalog.ToolCreateTag, Args{"name": "prod"}, call{"CreateTag", []any{"prod"}}},
		{catalog.ToolUpdateTag, Args{"id": "1", "name": "production"}, call{"UpdateTag", []any{"1", "production"}}},
		{catalog.ToolDeleteTag, Args{"id": "1"}, call{"DeleteTag", []any{"1"}}},

		{catalog.ToolListVariables, Args{}, call{"ListVariables", nil}},
		{catalog.ToolCreateVariable, Args{"key": "ENV", "value": "prod"}, call{"CreateVariable", []any{"ENV", "prod"}}},
		{catalog.ToolUpdateVariable, Args{"id": "5", "key": "ENV", "value": "stage"}, call{"UpdateVariable", []any{"5", "ENV", "stage"}}},
		{catalog.ToolDeleteVariable, Args{"id": "5"}, call{"DeleteVariable", []any{"5"}}},

		{catalog.ToolListUsers, Args{}, call{"ListUsers", nil}},
		{catalog.ToolGetUser, Args{"identifier": "a@b.c"}, call{"GetUser", []any{"a@b.c"}}},
		{catalog.ToolDeleteUser, Args{"id": "u1"}, call{"DeleteUser", []any{"u1"}}},
		{catalog.ToolUpdateUserRole, Args{"id": "u1", "role": "admin"}, call{"UpdateUserRole", []any{"u1", "admin"}}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			b := &recordingBackend{result: map[string]any{"ok": true}}
			got, err := NewTable().Dispatch(context.Background(), tt.tool, b, tt.args)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"ok": true}, got)
			require.Len(t, b.calls, 1)
			assert.Equal(t, tt.want, b.calls[0])
		})
	}
}

func TestDispatchDoesNotMutateArgs(t *testing.T) {
	args := Args{"id": "7", "name": "renamed"}
	b := &recordingBackend{}
	_, err := NewTable().Dispatch(context.Background(), catalog.ToolUpdateWorkflow, b, args)
	require.NoError(t, err)
	assert.Equal(t, Args{"id": "7", "name": "renamed"}, args)
}

func TestDispatchPropagatesBackendError(t *testing.T) {
	boom := errors.New("n8n API Error (500): boom")
	b := &recordingBackend{err: boom}
	_, err := NewTable().Dispatch(context.Background(), catalog.ToolListTags, b, Args{})
	assert.ErrorIs(t, err, boom)
}

func TestDispatchUpdateWorkflowTagsRequiresArray(t *testing.T) {
	tests := []struct {
		name string
		args Args
	}{
		{"absent", Args{"id": "42"}},
		{"null", Args{"id": "42", "tags": nil}},
		{"string", Args{"id": "42", "tags": "prod"}},
		{"object", Args{"id": "42", "tags": map[string]any{"name": "prod"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &recordingBackend{}
			_, err := NewTable().Dispatch(context.Background(), catalog.ToolUpdateWorkflowTags, b, tt.args)
			assert.ErrorIs(t, err, ErrTagsNotArray)
			assert.Empty(t, b.calls)
		})
	}
}

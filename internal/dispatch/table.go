package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"n8n-mcp/internal/catalog"
	"n8n-mcp/internal/n8n"
)

// Handler performs one tool call against the backend.
type Handler func(ctx context.Context, b Backend, args Args) (any, error)

// UnknownToolError is returned for a tool name absent from the table.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// ErrTagsNotArray is returned, before any request is made, when the tags
// argument of a tag replacement is missing or not an array.
var ErrTagsNotArray = errors.New("tags must be an array of tag names")

// Table maps tool names to handlers.
type Table map[string]Handler

// NewTable returns the handler table covering every catalog tool.
func NewTable() Table {
	return Table{
		catalog.ToolListWorkflows: func(ctx context.Context, b Backend, a Args) (any, error) {
			filter := n8n.WorkflowFilter{Active: a.OptionalBool("active")}
			if tags, ok := a.OptionalString("tags"); ok {
				filter.Tags = tags
			}
			return b.ListWorkflows(ctx, filter)
		},
		catalog.ToolGetWorkflow: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.GetWorkflow(ctx, a.String("id"))
		},
		catalog.ToolCreateWorkflow: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.CreateWorkflow(ctx, a.Map())
		},
		catalog.ToolUpdateWorkflow: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.UpdateWorkflow(ctx, a.String("id"), a.Without("id"))
		},
		catalog.ToolDeleteWorkflow: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.DeleteWorkflow(ctx, a.String("id"))
		},
		catalog.ToolActivateWorkflow: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.ActivateWorkflow(ctx, a.String("id"))
		},
		catalog.ToolDeactivateWorkflow: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.DeactivateWorkflow(ctx, a.String("id"))
		},
		catalog.ToolExecuteWorkflow: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.ExecuteWorkflow(ctx, a.String("id"), a.Raw("data"))
		},
		catalog.ToolGetWorkflowTags: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.GetWorkflowTags(ctx, a.String("id"))
		},
		catalog.ToolUpdateWorkflowTags: func(ctx context.Context, b Backend, a Args) (any, error) {
			tags, ok := a.StringsOK("tags")
			if !ok {
				return nil, ErrTagsNotArray
			}
			return b.UpdateWorkflowTags(ctx, a.String("id"), tags)
		},

		catalog.ToolListExecutions: func(ctx context.Context, b Backend, a Args) (any, error) {
			var filter n8n.ExecutionFilter
			if id, ok := a.OptionalString("workflowId"); ok {
				filter.WorkflowID = id
			}
			if status, ok := a.OptionalString("status"); ok {
				filter.Status = status
			}
			return b.ListExecutions(ctx, filter)
		},
		catalog.ToolGetExecution: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.GetExecution(ctx, a.String("id"))
		},
		catalog.ToolDeleteExecution: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.DeleteExecution(ctx, a.String("id"))
		},
		catalog.ToolRetryExecution: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.RetryExecution(ctx, a.String("id"))
		},

		catalog.ToolCreateCredential: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.CreateCredential(ctx, a.Map())
		},
		catalog.ToolUpdateCredential: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.UpdateCredential(ctx, a.String("id"), a.Without("id"))
		},
		catalog.ToolDeleteCredential: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.DeleteCredential(ctx, a.String("id"))
		},
		catalog.ToolGetCredentialSchema: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.GetCredentialSchema(ctx, a.String("credentialType"))
		},

		catalog.ToolListTags: func(ctx context.Context, b Backend, _ Args) (any, error) {
			return b.ListTags(ctx)
		},
		catalog.ToolGetTag: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.GetTag(ctx, a.String("id"))
		},
		catalog.ToolCreateTag: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.CreateTag(ctx, a.String("name"))
		},
		catalog.ToolUpdateTag: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.UpdateTag(ctx, a.String("id"), a.String("name"))
		},
		catalog.ToolDeleteTag: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.DeleteTag(ctx, a.String("id"))
		},

		catalog.ToolListVariables: func(ctx context.Context, b Backend, _ Args) (any, error) {
			return b.ListVariables(ctx)
		},
		catalog.ToolCreateVariable: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.CreateVariable(ctx, a.String("key"), a.Raw("value"))
		},
		catalog.ToolUpdateVariable: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.UpdateVariable(ctx, a.String("id"), a.String("key"), a.Raw("value"))
		},
		catalog.ToolDeleteVariable: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.DeleteVariable(ctx, a.String("id"))
		},

		catalog.ToolListUsers: func(ctx context.Context, b Backend, _ Args) (any, error) {
			return b.ListUsers(ctx)
		},
		catalog.ToolGetUser: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.GetUser(ctx, a.String("identifier"))
		},
		catalog.ToolDeleteUser: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.DeleteUser(ctx, a.String("id"))
		},
		catalog.ToolUpdateUserRole: func(ctx context.Context, b Backend, a Args) (any, error) {
			return b.UpdateUserRole(ctx, a.String("id"), a.String("role"))
		},
	}
}

// Has reports whether name has a handler.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Names returns the handled tool names, sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the handler registered for name.
func (t Table) Dispatch(ctx context.Context, name string, b Backend, args Args) (any, error) {
	h, ok := t[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}
	if args == nil {
		args = Args{}
	}
	return h(ctx, b, args)
}

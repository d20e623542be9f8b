package n8n

import (
	"context"
	"net/http"
	"net/url"
)

// ExecutionFilter narrows ListExecutions. Empty fields are omitted from the query.
type ExecutionFilter struct {
	WorkflowID string
	Status     string
}

func (f ExecutionFilter) query() url.Values {
	q := url.Values{}
	if f.WorkflowID != "" {
		q.Set("workflowId", f.WorkflowID)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	return q
}

func (c *Client) ListExecutions(ctx context.Context, filter ExecutionFilter) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("executions"), filter.query(), nil)
}

func (c *Client) GetExecution(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("executions", id), nil, nil)
}

func (c *Client) DeleteExecution(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodDelete, c.endpoint("executions", id), nil, nil)
}

// RetryExecution reruns a failed execution with an empty JSON body.
func (c *Client) RetryExecution(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodPost, c.endpoint("executions", id, "retry"), nil, map[string]any{})
}

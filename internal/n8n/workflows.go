package n8n

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// WorkflowFilter narrows ListWorkflows. Zero values are omitted from the query.
type WorkflowFilter struct {
	Active *bool
	Tags   string
}

func (f WorkflowFilter) query() url.Values {
	q := url.Values{}
	if f.Active != nil {
		q.Set("active", strconv.FormatBool(*f.Active))
	}
	if f.Tags != "" {
		q.Set("tags", f.Tags)
	}
	return q
}

// tagRef is the wire shape n8n expects when assigning tags to a workflow.
type tagRef struct {
	Name string `json:"name"`
}

func (c *Client) ListWorkflows(ctx context.Context, filter WorkflowFilter) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("workflows"), filter.query(), nil)
}

func (c *Client) GetWorkflow(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("workflows", id), nil, nil)
}

// CreateWorkflow posts workflow as the request body unchanged.
func (c *Client) CreateWorkflow(ctx context.Context, workflow map[string]any) (any, error) {
	return c.do(ctx, http.MethodPost, c.endpoint("workflows"), nil, nonNilObject(workflow))
}

// UpdateWorkflow replaces the workflow definition with a PUT.
func (c *Client) UpdateWorkflow(ctx context.Context, id string, workflow map[string]any) (any, error) {
	return c.do(ctx, http.MethodPut, c.endpoint("workflows", id), nil, nonNilObject(workflow))
}

func (c *Client) DeleteWorkflow(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodDelete, c.endpoint("workflows", id), nil, nil)
}

func (c *Client) ActivateWorkflow(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodPost, c.endpoint("workflows", id, "activate"), nil, nil)
}

func (c *Client) DeactivateWorkflow(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodPost, c.endpoint("workflows", id, "deactivate"), nil, nil)
}

// ExecuteWorkflow triggers a manual run. A nil data payload is sent as {}.
func (c *Client) ExecuteWorkflow(ctx context.Context, id string, data any) (any, error) {
	if data == nil {
		data = map[string]any{}
	}
	return c.do(ctx, http.MethodPost, c.endpoint("workflows", id, "run"), nil, data)
}

func (c *Client) GetWorkflowTags(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("workflows", id, "tags"), nil, nil)
}

// UpdateWorkflowTags replaces the workflow's tags. Each name is sent as {"name": ...}.
func (c *Client) UpdateWorkflowTags(ctx context.Context, id string, tags []string) (any, error) {
	refs := make([]tagRef, 0, len(tags))
	for _, t := range tags {
		refs = append(refs, tagRef{Name: t})
	}
	return c.do(ctx, http.MethodPut, c.endpoint("workflows", id, "tags"), nil, refs)
}

func nonNilObject(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

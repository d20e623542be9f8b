package n8n

import (
	"context"
	"net/http"
)

func (c *Client) ListTags(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("tags"), nil, nil)
}

func (c *Client) GetTag(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("tags", id), nil, nil)
}

func (c *Client) CreateTag(ctx context.Context, name string) (any, error) {
	return c.do(ctx, http.MethodPost, c.endpoint("tags"), nil, tagRef{Name: name})
}

func (c *Client) UpdateTag(ctx context.Context, id, name string) (any, error) {
	return c.do(ctx, http.MethodPut, c.endpoint("tags", id), nil, tagRef{Name: name})
}

func (c *Client) DeleteTag(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodDelete, c.endpoint("tags", id), nil, nil)
}

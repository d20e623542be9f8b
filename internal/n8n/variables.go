package n8n

import (
	"context"
	"net/http"
)

// variable is the request body for creating or updating a variable.
// Value is passed through as received.
type variable struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func (c *Client) ListVariables(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("variables"), nil, nil)
}

func (c *Client) CreateVariable(ctx context.Context, key string, value any) (any, error) {
	return c.do(ctx, http.MethodPost, c.endpoint("variables"), nil, variable{Key: key, Value: value})
}

func (c *Client) UpdateVariable(ctx context.Context, id, key string, value any) (any, error) {
	return c.do(ctx, http.MethodPut, c.endpoint("variables", id), nil, variable{Key: key, Value: value})
}

func (c *Client) DeleteVariable(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodDelete, c.endpoint("variables", id), nil, nil)
}

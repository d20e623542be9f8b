package n8n

import (
	"context"
	"net/http"
)

// User endpoints require an owner API key.

func (c *Client) ListUsers(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("users"), nil, nil)
}

// GetUser looks a user up by ID or email address.
func (c *Client) GetUser(ctx context.Context, identifier string) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("users", identifier), nil, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodDelete, c.endpoint("users", id), nil, nil)
}

// UpdateUserRole sets the global role; n8n accepts "admin" or "member".
func (c *Client) UpdateUserRole(ctx context.Context, id, role string) (any, error) {
	return c.do(ctx, http.MethodPatch, c.endpoint("users", id, "role"), nil, map[string]string{"role": role})
}

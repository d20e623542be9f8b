package n8n

import (
	"context"
	"net/http"
)

// CreateCredential posts credential as the request body unchanged.
func (c *Client) CreateCredential(ctx context.Context, credential map[string]any) (any, error) {
	return c.do(ctx, http.MethodPost, c.endpoint("credentials"), nil, nonNilObject(credential))
}

// UpdateCredential patches the credential with the given fields.
func (c *Client) UpdateCredential(ctx context.Context, id string, credential map[string]any) (any, error) {
	return c.do(ctx, http.MethodPatch, c.endpoint("credentials", id), nil, nonNilObject(credential))
}

func (c *Client) DeleteCredential(ctx context.Context, id string) (any, error) {
	return c.do(ctx, http.MethodDelete, c.endpoint("credentials", id), nil, nil)
}

// GetCredentialSchema returns the JSON schema n8n expects for credentialType.
func (c *Client) GetCredentialSchema(ctx context.Context, credentialType string) (any, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("credentials", "schema", credentialType), nil, nil)
}

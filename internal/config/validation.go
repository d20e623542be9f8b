package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for values that can never work.
// Missing n8n credentials are not reported here; see N8NConfig.RequireComplete.
func (c Config) Validate() error {
	var errs ValidationErrors

	switch c.Server.Transport {
	case TransportStdio, TransportStreamableHTTP, TransportStatelessHTTP:
	default:
		errs.Add("server.transport", fmt.Sprintf("must be one of %s, %s, %s",
			TransportStdio, TransportStreamableHTTP, TransportStatelessHTTP), c.Server.Transport)
	}

	if c.Server.IsHTTP() {
		if c.Server.Port < 1 || c.Server.Port > 65535 {
			errs.Add("server.port", "must be between 1 and 65535", c.Server.Port)
		}
		if !strings.HasPrefix(c.Server.EndpointPath, "/") {
			errs.Add("server.endpointPath", "must start with '/'", c.Server.EndpointPath)
		}
	}

	if c.Server.MaxSessions < 0 {
		errs.Add("server.maxSessions", "must not be negative", c.Server.MaxSessions)
	}

	if c.N8N.URL != "" {
		if err := ValidateBaseURL(c.N8N.URL); err != nil {
			errs.Add("n8n.url", err.Error(), c.N8N.URL)
		}
	}

	if c.N8N.Timeout < 0 {
		errs.Add("n8n.timeout", "must not be negative", c.N8N.Timeout)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateBaseURL checks that raw is an absolute http or https URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

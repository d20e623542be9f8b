package n8n

import (
	"net/url"
	"strings"
)

// sensitiveParams contains query parameter name fragments that are redacted
// before a URL is logged. Matching is case-insensitive.
var sensitiveParams = []string{
	"api_key",
	"apikey",
	"api-key",
	"token",
	"password",
	"secret",
	"key",
	"credential",
}

// SanitizeURL returns u as a string with sensitive query values replaced.
func SanitizeURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	q := u.Query()
	redacted := false
	for param := range q {
		if isSensitiveParam(param) {
			q.Set(param, "[REDACTED]")
			redacted = true
		}
	}
	if !redacted {
		return u.String()
	}

	safe := *u
	safe.RawQuery = q.Encode()
	safe.User = nil
	return safe.String()
}

func isSensitiveParam(param string) bool {
	lower := strings.ToLower(param)
	for _, sensitive := range sensitiveParams {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}

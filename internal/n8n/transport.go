package n8n

import (
	"net/http"
	"time"

	"n8n-mcp/internal/metrics"
	"n8n-mcp/pkg/logging"
)

// loggingTransport logs each outbound request with a sanitised URL and
// records it in the backend request metrics.
type loggingTransport struct {
	base http.RoundTripper
}

func newLoggingTransport(base http.RoundTripper) *loggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &loggingTransport{base: base}
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start).Milliseconds()

	logURL := SanitizeURL(req.URL)
	if err != nil {
		metrics.ObserveBackendRequest(req.Method, 0)
		logging.Warn("N8nClient", "%s %s failed after %dms: %v", req.Method, logURL, elapsed, err)
		return nil, err
	}

	metrics.ObserveBackendRequest(req.Method, resp.StatusCode)
	if resp.StatusCode >= 400 {
		logging.Warn("N8nClient", "%s %s -> %d (%dms)", req.Method, logURL, resp.StatusCode, elapsed)
	} else {
		logging.Debug("N8nClient", "%s %s -> %d (%dms)", req.Method, logURL, resp.StatusCode, elapsed)
	}
	return resp, nil
}

package transport

import (
	"net/http"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"n8n-mcp/internal/config"
	"n8n-mcp/pkg/logging"
)

// Query parameters that carry per-request connection settings.
const (
	QueryN8NURL    = "N8N_URL"
	QueryN8NAPIKey = "N8N_API_KEY"
)

// StatelessOptions configures a Stateless handler.
type StatelessOptions struct {
	Factory Factory
	// N8N is the process-wide fallback used when a request carries no
	// connection settings of its own. It may be nil.
	N8N *config.N8NConfig
}

// Stateless serves the MCP endpoint with a fresh server instance per request.
// No state survives between requests.
type Stateless struct {
	opts StatelessOptions
}

// NewStateless creates the handler.
func NewStateless(opts StatelessOptions) *Stateless {
	return &Stateless{opts: opts}
}

func (s *Stateless) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		writeRPCError(w, http.StatusMethodNotAllowed, codeServerError, msgMethodNotAllowed)
		return
	}

	inst := s.opts.Factory(s.requestConfig(r))
	handler := mcpserver.NewStreamableHTTPServer(
		inst.MCPServer(),
		mcpserver.WithStateLess(true),
		mcpserver.WithLogger(mcpLogger{subsystem: "Transport"}),
	)
	handler.ServeHTTP(w, r)
}

// requestConfig returns the connection settings for r. Query parameters
// win when both are present; otherwise the process-wide settings apply.
func (s *Stateless) requestConfig(r *http.Request) *config.N8NConfig {
	q := r.URL.Query()
	rawURL := strings.TrimSpace(q.Get(QueryN8NURL))
	apiKey := strings.TrimSpace(q.Get(QueryN8NAPIKey))

	if rawURL == "" || apiKey == "" {
		if rawURL != "" || apiKey != "" {
			logging.Debug("Transport", "Ignoring partial per-request n8n settings; both %s and %s are required", QueryN8NURL, QueryN8NAPIKey)
		}
		return s.opts.N8N
	}

	cfg := config.N8NConfig{URL: rawURL, APIKey: apiKey}
	if s.opts.N8N != nil {
		cfg.Timeout = s.opts.N8N.Timeout
		cfg.APIPath = s.opts.N8N.APIPath
	}
	return &cfg
}

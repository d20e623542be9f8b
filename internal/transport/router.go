package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"n8n-mcp/internal/metrics"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// MCP handles every method on EndpointPath.
	MCP          http.Handler
	EndpointPath string
	Info         InfoSource
	Metrics      bool
	CORS         bool
}

// NewRouter mounts the MCP endpoint, the info endpoint and, optionally,
// Prometheus metrics.
func NewRouter(opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(recoverer)
	if opts.CORS {
		r.Use(withCORS)
	}

	r.Get("/", infoHandler(opts.Info))
	if opts.Metrics {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	r.Handle(opts.EndpointPath, opts.MCP)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})
	return r
}

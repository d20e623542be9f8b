package transport

import (
	"encoding/json"
	"net/http"

	"n8n-mcp/internal/catalog"
	"n8n-mcp/internal/server"
	"n8n-mcp/pkg/logging"
)

// Info is the liveness document served at GET /.
type Info struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Tools     int               `json:"tools"`
	Transport string            `json:"transport"`
	Endpoints map[string]string `json:"endpoints"`
	N8NURL    *string           `json:"n8n_url"`
	Sessions  *int              `json:"sessions,omitempty"`
}

// InfoSource supplies the dynamic parts of Info.
type InfoSource struct {
	Version      string
	Transport    string
	EndpointPath string
	N8NURL       string
	// Sessions reports the live session count. Nil in stateless mode.
	Sessions func() int
}

func (src InfoSource) info() Info {
	info := Info{
		Name:      server.Name,
		Version:   src.Version,
		Status:    "ok",
		Tools:     catalog.Len(),
		Transport: src.Transport,
		Endpoints: map[string]string{"mcp": src.EndpointPath},
	}
	if src.N8NURL != "" {
		u := src.N8NURL
		info.N8NURL = &u
	}
	if src.Sessions != nil {
		n := src.Sessions()
		info.Sessions = &n
	}
	return info
}

func infoHandler(src InfoSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(src.info()); err != nil {
			logging.Debug("HTTP", "Failed to write info response: %v", err)
		}
	}
}

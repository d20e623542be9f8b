package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"n8n-mcp/internal/config"
	"n8n-mcp/internal/server"
)

const initializeBody = `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1.0.0"}}}`

func toolsListBody() string {
	return `{"jsonrpc":"2.0","id":2,"method":"tools/list","params":{}}`
}

func toolCallBody(name string, args map[string]any) string {
	raw, _ := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      3,
		"method":  "tools/call",
		"params":  map[string]any{"name": name, "arguments": args},
	})
	return string(raw)
}

func testFactory(n8n *config.N8NConfig) *server.Instance {
	return server.New(server.Options{N8N: n8n, Version: "test"})
}

// countingBackend is a fake n8n API that counts requests per path.
type countingBackend struct {
	*httptest.Server
	mu    sync.Mutex
	paths []string
	keys  []string
}

func newCountingBackend(t *testing.T) *countingBackend {
	t.Helper()
	b := &countingBackend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.paths = append(b.paths, r.Method+" "+r.URL.Path)
		b.keys = append(b.keys, r.Header.Get("X-N8N-API-KEY"))
		b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":[]}`)
	}))
	t.Cleanup(b.Close)
	return b
}

func (b *countingBackend) requests() ([]string, []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.paths...), append([]string(nil), b.keys...)
}

func post(t *testing.T, url, sessionID, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	if sessionID != "" {
		req.Header.Set(mcpserver.HeaderKeySessionID, sessionID)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func doRequest(t *testing.T, method, url, sessionID string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if sessionID != "" {
		req.Header.Set(mcpserver.HeaderKeySessionID, sessionID)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func rpcErrorOf(t *testing.T, resp *http.Response) (float64, string) {
	t.Helper()
	body := decodeBody(t, resp)
	require.Contains(t, body, "error")
	require.Nil(t, body["id"])
	e := body["error"].(map[string]any)
	return e["code"].(float64), e["message"].(string)
}

// toolResult extracts the single text block and error flag of a tools/call response.
func toolResult(t *testing.T, resp *http.Response) (string, bool) {
	t.Helper()
	body := decodeBody(t, resp)
	require.NotContains(t, body, "error")
	result := body["result"].(map[string]any)
	content := result["content"].([]any)
	require.Len(t, content, 1)
	isError, _ := result["isError"].(bool)
	return content[0].(map[string]any)["text"].(string), isError
}

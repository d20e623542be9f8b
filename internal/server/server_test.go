package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"n8n-mcp/internal/catalog"
	"n8n-mcp/internal/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	APIKey string
	Body   string
}

// fakeN8N is an httptest server that records requests and replies with a
// fixed status and body.
type fakeN8N struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeN8N(t *testing.T, status int, body string) *fakeN8N {
	t.Helper()
	f := &fakeN8N{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			APIKey: r.Header.Get("X-N8N-API-KEY"),
			Body:   string(raw),
		})
		f.mu.Unlock()
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.body)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeN8N) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *fakeN8N) config() *config.N8NConfig {
	return &config.N8NConfig{URL: f.URL + "/", APIKey: "secret"}
}

// rpc sends one JSON-RPC request through the MCP server and returns the
// decoded response envelope.
func rpc(t *testing.T, inst *Instance, method string, params any) map[string]any {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	resp := inst.MCPServer().HandleMessage(context.Background(), msg)
	require.NotNil(t, resp)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// callTool performs tools/call and returns the text block and error flag.
func callTool(t *testing.T, inst *Instance, name string, args map[string]any) (string, bool) {
	t.Helper()
	out := rpc(t, inst, "tools/call", map[string]any{"name": name, "arguments": args})
	require.NotContains(t, out, "error", "unexpected JSON-RPC error: %v", out["error"])

	result := out["result"].(map[string]any)
	content := result["content"].([]any)
	require.Len(t, content, 1)
	block := content[0].(map[string]any)
	assert.Equal(t, "text", block["type"])

	isError, _ := result["isError"].(bool)
	return block["text"].(string), isError
}

func toolNames(t *testing.T, inst *Instance) []string {
	t.Helper()
	out := rpc(t, inst, "tools/list", map[string]any{})
	tools := out["result"].(map[string]any)["tools"].([]any)
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.(map[string]any)["name"].(string))
	}
	return names
}

func TestListToolsIndependentOfConfig(t *testing.T) {
	unconfigured := New(Options{})
	configured := New(Options{N8N: &config.N8NConfig{URL: "http://n8n.invalid", APIKey: "k"}})

	want := catalog.Names()
	for n := 0; n < 3; n++ {
		assert.Equal(t, want, toolNames(t, unconfigured))
		assert.Equal(t, want, toolNames(t, configured))
	}
	assert.NotContains(t, toolNames(t, unconfigured), unknownToolName)
}

func TestListToolsCarriesAnnotations(t *testing.T) {
	out := rpc(t, New(Options{}), "tools/list", map[string]any{})
	tools := out["result"].(map[string]any)["tools"].([]any)

	for _, raw := range tools {
		tool := raw.(map[string]any)
		if tool["name"] != catalog.ToolDeleteWorkflow {
			continue
		}
		annotations := tool["annotations"].(map[string]any)
		assert.Equal(t, true, annotations["destructiveHint"])
		assert.Equal(t, false, annotations["readOnlyHint"])
		assert.Equal(t, "Delete Workflow", annotations["title"])
		return
	}
	t.Fatal("n8n_delete_workflow missing from tools/list")
}

func TestUnknownToolIsErrorResult(t *testing.T) {
	for _, inst := range []*Instance{
		New(Options{}),
		New(Options{N8N: &config.N8NConfig{URL: "http://n8n.invalid", APIKey: "k"}}),
	} {
		text, isError := callTool(t, inst, "n8n_launch_rocket", map[string]any{"id": "1"})
		assert.True(t, isError)
		assert.Equal(t, "Error: Unknown tool: n8n_launch_rocket", text)

		text, isError = callTool(t, inst, unknownToolName, nil)
		assert.True(t, isError)
		assert.Contains(t, text, "Unknown tool")
	}
}

func TestMissingConfigurationIsPerCall(t *testing.T) {
	inst := New(Options{})

	text, isError := callTool(t, inst, catalog.ToolListWorkflows, nil)
	assert.True(t, isError)
	assert.Equal(t, "Error: Missing required configuration: N8N_URL and N8N_API_KEY. Set them before using any tools.", text)

	// The server keeps working.
	assert.Len(t, toolNames(t, inst), catalog.Len())

	partial := New(Options{N8N: &config.N8NConfig{URL: "http://n8n.example.com"}})
	text, isError = callTool(t, partial, catalog.ToolListTags, nil)
	assert.True(t, isError)
	assert.Contains(t, text, "N8N_API_KEY")
	assert.NotContains(t, text, "N8N_URL and")
}

func TestConfiguredListWorkflowsIssuesOneGet(t *testing.T) {
	backend := newFakeN8N(t, http.StatusOK, `{"data":[{"id":"1","name":"Hello <World>"}],"nextCursor":null}`)
	inst := New(Options{N8N: backend.config()})

	text, isError := callTool(t, inst, catalog.ToolListWorkflows, nil)
	require.False(t, isError, text)

	reqs := backend.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/api/v1/workflows", reqs[0].Path)
	assert.Empty(t, reqs[0].Query)
	assert.Equal(t, "secret", reqs[0].APIKey)

	assert.Equal(t, "{\n  \"data\": [\n    {\n      \"id\": \"1\",\n      \"name\": \"Hello <World>\"\n    }\n  ],\n  \"nextCursor\": null\n}", text)
}

func TestUpdateWorkflowTagsTwice(t *testing.T) {
	backend := newFakeN8N(t, http.StatusOK, `[{"id":"a","name":"prod"},{"id":"b","name":"urgent"}]`)
	inst := New(Options{N8N: backend.config()})

	args := map[string]any{"id": "42", "tags": []any{"prod", "urgent"}}
	first, isError := callTool(t, inst, catalog.ToolUpdateWorkflowTags, args)
	require.False(t, isError)
	second, isError := callTool(t, inst, catalog.ToolUpdateWorkflowTags, args)
	require.False(t, isError)
	assert.Equal(t, first, second)

	reqs := backend.recorded()
	require.Len(t, reqs, 2)
	for _, r := range reqs {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/workflows/42/tags", r.Path)
		assert.JSONEq(t, `[{"name":"prod"},{"name":"urgent"}]`, r.Body)
	}
}

func TestUpdateWorkflowTagsRejectsNonArray(t *testing.T) {
	for name, args := range map[string]map[string]any{
		"absent": {"id": "42"},
		"string": {"id": "42", "tags": "prod"},
	} {
		t.Run(name, func(t *testing.T) {
			backend := newFakeN8N(t, http.StatusOK, `[]`)
			inst := New(Options{N8N: backend.config()})

			text, isError := callTool(t, inst, catalog.ToolUpdateWorkflowTags, args)
			assert.True(t, isError)
			assert.Equal(t, "Error: tags must be an array of tag names", text)
			assert.Empty(t, backend.recorded())
		})
	}
}

func TestUpdateWorkflowTagsEmptyArrayClears(t *testing.T) {
	backend := newFakeN8N(t, http.StatusOK, `[]`)
	inst := New(Options{N8N: backend.config()})

	_, isError := callTool(t, inst, catalog.ToolUpdateWorkflowTags, map[string]any{"id": "42", "tags": []any{}})
	require.False(t, isError)

	reqs := backend.recorded()
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `[]`, reqs[0].Body)
}

func TestResultKeepsBackendKeyOrder(t *testing.T) {
	backend := newFakeN8N(t, http.StatusOK, `{"name":"wf","id":"1","active":false,"versionCounter":12345678901234567}`)
	inst := New(Options{N8N: backend.config()})

	text, isError := callTool(t, inst, catalog.ToolGetWorkflow, map[string]any{"id": "1"})
	require.False(t, isError, text)
	assert.Equal(t, "{\n  \"name\": \"wf\",\n  \"id\": \"1\",\n  \"active\": false,\n  \"versionCounter\": 12345678901234567\n}", text)
}

func TestBackendErrorPassthrough(t *testing.T) {
	backend := newFakeN8N(t, http.StatusNotFound, "Not Found")
	inst := New(Options{N8N: backend.config()})

	text, isError := callTool(t, inst, catalog.ToolGetWorkflow, map[string]any{"id": "missing"})
	assert.True(t, isError)
	assert.Contains(t, text, "404")
	assert.Contains(t, text, "Not Found")
	assert.Equal(t, "Error: n8n API Error (404): Not Found", text)
}

func TestDataArgumentsRoundTrip(t *testing.T) {
	data := map[string]any{
		"accessToken": "ghp_x",
		"nested":      map[string]any{"list": []any{float64(1), "two", nil, true}},
		"empty":       map[string]any{},
	}

	tests := []struct {
		tool string
		args map[string]any
		want map[string]any
	}{
		{
			tool: catalog.ToolCreateCredential,
			args: map[string]any{"name": "gh", "type": "githubApi", "data": data},
			want: map[string]any{"name": "gh", "type": "githubApi", "data": data},
		},
		{
			tool: catalog.ToolUpdateCredential,
			args: map[string]any{"id": "3", "data": data},
			want: map[string]any{"data": data},
		},
		{
			tool: catalog.ToolExecuteWorkflow,
			args: map[string]any{"id": "7", "data": data},
			want: data,
		},
		{
			tool: catalog.ToolCreateVariable,
			args: map[string]any{"key": "CFG", "value": "v"},
			want: map[string]any{"key": "CFG", "value": "v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			backend := newFakeN8N(t, http.StatusOK, `{}`)
			inst := New(Options{N8N: backend.config()})

			_, isError := callTool(t, inst, tt.tool, tt.args)
			require.False(t, isError)

			reqs := backend.recorded()
			require.Len(t, reqs, 1)
			var got map[string]any
			require.NoError(t, json.Unmarshal([]byte(reqs[0].Body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmptyBackendBodyIsNull(t *testing.T) {
	backend := newFakeN8N(t, http.StatusNoContent, "")
	inst := New(Options{N8N: backend.config()})

	text, isError := callTool(t, inst, catalog.ToolDeleteTag, map[string]any{"id": "1"})
	assert.False(t, isError)
	assert.Equal(t, "null", text)
}

func TestDenyDestructive(t *testing.T) {
	backend := newFakeN8N(t, http.StatusOK, `{}`)
	inst := New(Options{N8N: backend.config(), DenyDestructive: true})

	text, isError := callTool(t, inst, catalog.ToolDeleteWorkflow, map[string]any{"id": "1"})
	assert.True(t, isError)
	assert.Equal(t, "Error: tool n8n_delete_workflow is destructive and disabled on this server", text)
	assert.Empty(t, backend.recorded())

	_, isError = callTool(t, inst, catalog.ToolListTags, nil)
	assert.False(t, isError)
	assert.Len(t, backend.recorded(), 1)

	assert.Equal(t, catalog.Names(), toolNames(t, inst))
}

func TestDenyDestructiveChecksUnknownFirst(t *testing.T) {
	inst := New(Options{DenyDestructive: true})
	result := inst.CallTool(context.Background(), "n8n_delete_everything", nil)
	assert.True(t, result.IsError)
}

func TestClientIsReused(t *testing.T) {
	backend := newFakeN8N(t, http.StatusOK, `{}`)
	inst := New(Options{N8N: backend.config()})

	first, err := inst.backend()
	require.NoError(t, err)
	second, err := inst.backend()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestInvalidURLSurfacesPerCall(t *testing.T) {
	inst := New(Options{N8N: &config.N8NConfig{URL: "ftp://n8n", APIKey: "k"}})

	text, isError := callTool(t, inst, catalog.ToolListTags, nil)
	assert.True(t, isError)
	assert.Contains(t, text, "invalid n8n URL")
}

func TestPrompts(t *testing.T) {
	inst := New(Options{})

	out := rpc(t, inst, "prompts/list", map[string]any{})
	prompts := out["result"].(map[string]any)["prompts"].([]any)
	require.Len(t, prompts, 2)

	out = rpc(t, inst, "prompts/get", map[string]any{"name": catalog.PromptDebugExecution})
	result := out["result"].(map[string]any)
	messages := result["messages"].([]any)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Contains(t, msg["content"].(map[string]any)["text"], "n8n_retry_execution")

	out = rpc(t, inst, "prompts/get", map[string]any{"name": "nope"})
	assert.Contains(t, out, "error")
}

func TestServerInfoResource(t *testing.T) {
	read := func(inst *Instance) map[string]any {
		out := rpc(t, inst, "resources/read", map[string]any{"uri": catalog.ServerInfoURI})
		contents := out["result"].(map[string]any)["contents"].([]any)
		require.Len(t, contents, 1)
		c := contents[0].(map[string]any)
		assert.Equal(t, "application/json", c["mimeType"])

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(c["text"].(string)), &doc))
		return doc
	}

	doc := read(New(Options{Version: "1.2.3"}))
	assert.Equal(t, Name, doc["name"])
	assert.Equal(t, "1.2.3", doc["version"])
	assert.Equal(t, false, doc["connected"])
	assert.Nil(t, doc["n8n_url"])
	assert.Equal(t, float64(31), doc["tools_available"])
	assert.Equal(t, map[string]any{
		"workflows":   float64(10),
		"executions":  float64(4),
		"credentials": float64(4),
		"tags":        float64(5),
		"variables":   float64(4),
		"users":       float64(4),
	}, doc["tool_categories"])

	doc = read(New(Options{N8N: &config.N8NConfig{URL: "https://n8n.example.com", APIKey: "k"}}))
	assert.Equal(t, true, doc["connected"])
	assert.Equal(t, "https://n8n.example.com", doc["n8n_url"])
}

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"n8n-mcp/internal/catalog"
)

func TestServeStdio(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		initializeBody,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		toolsListBody(),
	}, "\n") + "\n")
	var out bytes.Buffer

	err := ServeStdio(context.Background(), testFactory(nil), in, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var list struct {
		ID     int `json:"id"`
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &list))
	assert.Equal(t, 2, list.ID)
	assert.Len(t, list.Result.Tools, catalog.Len())
	assert.Equal(t, catalog.ToolListWorkflows, list.Result.Tools[0].Name)
}

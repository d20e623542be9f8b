package transport

import (
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"n8n-mcp/pkg/logging"
)

const (
	// codeServerError is the implementation-defined JSON-RPC server error
	// used for transport level rejections.
	codeServerError   = -32000
	codeParseError    = mcp.PARSE_ERROR
	codeInternalError = mcp.INTERNAL_ERROR
)

const (
	msgNoValidSession   = "Bad Request: No valid session ID provided"
	msgInvalidSession   = "Bad Request: Invalid or missing session ID"
	msgSessionLimit     = "Server busy: session limit reached"
	msgMethodNotAllowed = "Method not allowed. Use POST."
	msgInternalError    = "Internal server error"
	msgParseError       = "Parse error"
)

type rpcErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcErrorEnvelope struct {
	JSONRPC string       `json:"jsonrpc"`
	Error   rpcErrorBody `json:"error"`
	ID      any          `json:"id"`
}

// writeRPCError writes a JSON-RPC error envelope with a null id.
func writeRPCError(w http.ResponseWriter, status, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(rpcErrorEnvelope{
		JSONRPC: mcp.JSONRPC_VERSION,
		Error:   rpcErrorBody{Code: code, Message: message},
		ID:      nil,
	})
	if err != nil {
		logging.Debug("Transport", "Failed to write error response: %v", err)
	}
}

// isInitializeRequest reports whether body is an initialize request, either
// alone or inside a batch.
func isInitializeRequest(body []byte) bool {
	type probe struct {
		Method string `json:"method"`
	}

	var single probe
	if err := json.Unmarshal(body, &single); err == nil {
		return single.Method == string(mcp.MethodInitialize)
	}

	var batch []probe
	if err := json.Unmarshal(body, &batch); err != nil {
		return false
	}
	for _, p := range batch {
		if p.Method == string(mcp.MethodInitialize) {
			return true
		}
	}
	return false
}

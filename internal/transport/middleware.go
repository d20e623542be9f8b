package transport

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"n8n-mcp/pkg/logging"
)

// requestLogger logs one line per request at debug level, or warn for 5xx.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			reqID := middleware.GetReqID(r.Context())
			if status >= http.StatusInternalServerError {
				logging.Warn("HTTP", "%s %s -> %d in %s (request %s)", r.Method, r.URL.Path, status, time.Since(start), reqID)
				return
			}
			logging.Debug("HTTP", "%s %s -> %d in %s (request %s)", r.Method, r.URL.Path, status, time.Since(start), reqID)
		}()

		next.ServeHTTP(ww, r)
	})
}

// recoverer turns a handler panic into a 500 JSON-RPC error envelope. The
// panic value is logged, never sent to the client.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			logging.Error("HTTP", fmt.Errorf("panic: %v", rec), "Unhandled error serving %s %s\n%s", r.Method, r.URL.Path, debug.Stack())
			if r.Header.Get("Connection") != "Upgrade" {
				writeRPCError(w, http.StatusInternalServerError, codeInternalError, msgInternalError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

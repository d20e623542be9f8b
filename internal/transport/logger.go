package transport

import "n8n-mcp/pkg/logging"

// mcpLogger routes mcp-go transport logs into the application logger.
type mcpLogger struct {
	subsystem string
}

func (l mcpLogger) Infof(format string, v ...any) {
	logging.Debug(l.subsystem, format, v...)
}

func (l mcpLogger) Errorf(format string, v ...any) {
	logging.Warn(l.subsystem, format, v...)
}

// stderrWriter adapts the application logger to an io.Writer for
// *log.Logger consumers.
type stderrWriter struct {
	subsystem string
}

func (w stderrWriter) Write(p []byte) (int, error) {
	msg := string(p)
	for len(msg) > 0 && (msg[len(msg)-1] == '\n' || msg[len(msg)-1] == '\r') {
		msg = msg[:len(msg)-1]
	}
	logging.Warn(w.subsystem, "%s", msg)
	return len(p), nil
}

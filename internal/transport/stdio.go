package transport

import (
	"context"
	"errors"
	"io"
	"log"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"n8n-mcp/internal/server"
)

// ServeStdio serves inst over in and out until in reaches EOF or ctx is
// cancelled. Logs never go to out.
func ServeStdio(ctx context.Context, inst *server.Instance, in io.Reader, out io.Writer) error {
	s := mcpserver.NewStdioServer(inst.MCPServer())
	s.SetErrorLogger(log.New(stderrWriter{subsystem: "Stdio"}, "", 0))

	err := s.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"n8n-mcp/internal/config"
	"n8n-mcp/internal/metrics"
	"n8n-mcp/pkg/logging"
)

// maxBodyBytes caps the size of a buffered initialize request.
const maxBodyBytes = 4 << 20

// StatefulOptions configures a Stateful handler.
type StatefulOptions struct {
	Factory           Factory
	N8N               *config.N8NConfig
	MaxSessions       int
	HeartbeatInterval time.Duration
}

// Stateful serves the MCP endpoint in streamable-http mode, keeping one
// server instance per client session.
type Stateful struct {
	opts     StatefulOptions
	sessions *sessionTable

	ctx    context.Context
	cancel context.CancelFunc
}

// NewStateful creates the handler. Close must be called on shutdown.
func NewStateful(opts StatefulOptions) *Stateful {
	ctx, cancel := context.WithCancel(context.Background())
	return &Stateful{
		opts:     opts,
		sessions: newSessionTable(opts.MaxSessions),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Sessions returns the number of live sessions.
func (s *Stateful) Sessions() int {
	return s.sessions.len()
}

// ServeHTTP routes the request to the session named by its Mcp-Session-Id
// header, creating a session for an initialize request without one.
func (s *Stateful) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(mcpserver.HeaderKeySessionID)

	switch r.Method {
	case http.MethodPost:
		s.handlePost(w, r, sessionID)
	case http.MethodGet, http.MethodDelete:
		sess, ok := s.sessions.lookup(sessionID)
		if !ok {
			logging.Debug("Transport", "%s with unknown session %q", r.Method, logging.TruncateSessionID(sessionID))
			writeRPCError(w, http.StatusBadRequest, codeServerError, msgInvalidSession)
			return
		}
		s.serve(w, r, sess)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeRPCError(w, http.StatusMethodNotAllowed, codeServerError, fmt.Sprintf("Method %s not allowed", r.Method))
	}
}

func (s *Stateful) handlePost(w http.ResponseWriter, r *http.Request, sessionID string) {
	if sessionID != "" {
		sess, ok := s.sessions.lookup(sessionID)
		if !ok {
			logging.Debug("Transport", "POST with unknown session %q", logging.TruncateSessionID(sessionID))
			writeRPCError(w, http.StatusBadRequest, codeServerError, msgNoValidSession)
			return
		}
		s.serve(w, r, sess)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeRPCError(w, http.StatusBadRequest, codeParseError, msgParseError)
		return
	}
	if !isInitializeRequest(body) {
		writeRPCError(w, http.StatusBadRequest, codeServerError, msgNoValidSession)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	sess, err := s.open()
	if err != nil {
		if errors.Is(err, errSessionLimit) {
			logging.Warn("Sessions", "Rejected new session: %d sessions live", s.sessions.len())
			writeRPCError(w, http.StatusServiceUnavailable, codeServerError, msgSessionLimit)
			return
		}
		logging.Error("Transport", err, "Failed to create session")
		writeRPCError(w, http.StatusInternalServerError, codeInternalError, msgInternalError)
		return
	}

	s.serve(w, r, sess)

	// The mcp-go transport only echoes the token once initialization
	// succeeded; anything else leaves no session behind.
	if w.Header().Get(mcpserver.HeaderKeySessionID) != sess.id {
		s.closeSession(sess.id, "initialization failed")
	}
}

// open creates and registers a new session.
func (s *Stateful) open() (*session, error) {
	if s.ctx.Err() != nil {
		return nil, errors.New("server is shutting down")
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(s.ctx)
	inst := s.opts.Factory(s.opts.N8N)

	sess := &session{
		id:        id,
		createdAt: time.Now(),
		instance:  inst,
		ctx:       ctx,
		cancel:    cancel,
	}
	sess.handler = mcpserver.NewStreamableHTTPServer(
		inst.MCPServer(),
		mcpserver.WithSessionIdManager(&sessionIDManager{id: id, owner: s}),
		mcpserver.WithHeartbeatInterval(s.opts.HeartbeatInterval),
		mcpserver.WithLogger(mcpLogger{subsystem: "Transport"}),
	)

	if err := s.sessions.register(sess); err != nil {
		cancel()
		return nil, err
	}

	metrics.SessionCreated()
	logging.Info("Sessions", "Session %s created (%d live)", logging.TruncateSessionID(id), s.sessions.len())
	return sess, nil
}

// serve hands the request to the session's transport. The request context
// is cancelled if the session closes while the request is in flight.
func (s *Stateful) serve(w http.ResponseWriter, r *http.Request, sess *session) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(sess.ctx, cancel)
	defer stop()

	sess.handler.ServeHTTP(w, r.WithContext(ctx))
}

// closeSession removes a session and cancels its in-flight requests.
// Closing an unknown session is a no-op.
func (s *Stateful) closeSession(id, reason string) bool {
	sess, ok := s.sessions.remove(id)
	if !ok {
		return false
	}
	sess.cancel()
	metrics.SessionTerminated()
	logging.Info("Sessions", "Session %s closed: %s (lived %s)", logging.TruncateSessionID(id), reason, time.Since(sess.createdAt).Round(time.Millisecond))
	return true
}

// Close terminates every live session. New sessions are refused afterwards.
func (s *Stateful) Close() {
	s.cancel()
	drained := s.sessions.drain()
	for _, sess := range drained {
		sess.cancel()
		metrics.SessionTerminated()
	}
	if len(drained) > 0 {
		logging.Info("Sessions", "Closed %d sessions on shutdown", len(drained))
	}
}

// sessionIDManager binds one mcp-go transport to the token minted for it.
type sessionIDManager struct {
	id    string
	owner *Stateful
}

func (m *sessionIDManager) Generate() string {
	return m.id
}

func (m *sessionIDManager) Validate(sessionID string) (bool, error) {
	if sessionID != m.id {
		return false, fmt.Errorf("session %q does not belong to this transport", logging.TruncateSessionID(sessionID))
	}
	if _, ok := m.owner.sessions.lookup(sessionID); !ok {
		return true, nil
	}
	return false, nil
}

func (m *sessionIDManager) Terminate(sessionID string) (bool, error) {
	if sessionID != m.id {
		return false, fmt.Errorf("session %q does not belong to this transport", logging.TruncateSessionID(sessionID))
	}
	m.owner.closeSession(sessionID, "terminated by client")
	return false, nil
}

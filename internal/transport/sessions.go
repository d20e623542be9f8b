package transport

import (
	"context"
	"errors"
	"sync"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"n8n-mcp/internal/server"
)

// MaxSessionIDLength bounds the session tokens that are looked up at all.
const MaxSessionIDLength = 256

var errSessionLimit = errors.New("session limit reached")

// session is one live client session in streamable-http mode.
type session struct {
	id        string
	createdAt time.Time
	instance  *server.Instance
	handler   *mcpserver.StreamableHTTPServer

	// ctx is cancelled when the session closes; in-flight requests on the
	// session are bound to it.
	ctx    context.Context
	cancel context.CancelFunc
}

// sessionTable maps session tokens to live sessions. Each operation is atomic.
type sessionTable struct {
	mu          sync.RWMutex
	sessions    map[string]*session
	maxSessions int // 0 means unlimited
}

func newSessionTable(maxSessions int) *sessionTable {
	if maxSessions < 0 {
		maxSessions = 0
	}
	return &sessionTable{
		sessions:    make(map[string]*session),
		maxSessions: maxSessions,
	}
}

// register adds s. It fails when the token is taken or the table is full.
func (t *sessionTable) register(s *session) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.sessions[s.id]; exists {
		return errors.New("session already registered")
	}
	if t.maxSessions > 0 && len(t.sessions) >= t.maxSessions {
		return errSessionLimit
	}
	t.sessions[s.id] = s
	return nil
}

func (t *sessionTable) lookup(id string) (*session, bool) {
	if id == "" || len(id) > MaxSessionIDLength {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sessions[id]
	return s, ok
}

func (t *sessionTable) remove(id string) (*session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[id]
	if ok {
		delete(t.sessions, id)
	}
	return s, ok
}

func (t *sessionTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}

// drain removes and returns every session.
func (t *sessionTable) drain() []*session {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*session, 0, len(t.sessions))
	for id, s := range t.sessions {
		out = append(out, s)
		delete(t.sessions, id)
	}
	return out
}

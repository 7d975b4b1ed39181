// Package session holds the volatile conversation state of an interactive
// run: an ordered sequence of turns (user text, model text, tool calls, tool
// results) kept only in process memory and destroyed on exit. Additional
// backends could live in sub-packages, but the toolkit deliberately ships
// none — persistence is a non-goal.
package session

import (
	"sync"
	"time"

	"github.com/hupe1980/contentstudio/core"
)

// Session is an ordered sequence of conversation contents for one
// interactive run.
type Session struct {
	ID        string         `json:"id"`
	Contents  []core.Content `json:"contents"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Clone returns a deep-enough copy: the contents slice is duplicated so the
// caller cannot mutate stored turn order.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Contents = make([]core.Content, len(s.Contents))
	copy(cp.Contents, s.Contents)
	return &cp
}

// Store is the minimal conversation store interface used by the agent.
type Store interface {
	Get(sessionID string) (*Session, error)
	Append(sessionID string, content core.Content) error
}

// InMemoryStore is a volatile Store implementation keeping sessions in a
// process-local map. Safe for concurrent access; each returned session is
// cloned to prevent external mutation of internal state.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// Interface compliance (compile-time assertion)
var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*Session)}
}

// Get returns an existing session (clone) or creates a new one lazily.
func (s *InMemoryStore) Get(sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		return sess.Clone(), nil
	}
	return s.createLocked(sessionID).Clone(), nil
}

// Append adds a content turn to an existing or newly created session.
func (s *InMemoryStore) Append(sessionID string, content core.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = s.createLocked(sessionID)
	}
	sess.Contents = append(sess.Contents, content)
	sess.UpdatedAt = time.Now()
	return nil
}

// createLocked allocates and stores a new session; caller must already hold
// the write lock.
func (s *InMemoryStore) createLocked(sessionID string) *Session {
	now := time.Now()
	sess := &Session{ID: sessionID, CreatedAt: now, UpdatedAt: now}
	s.sessions[sessionID] = sess
	return sess
}

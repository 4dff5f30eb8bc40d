package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mahmoudabadi/portfolio/internal/locale"
	"github.com/mahmoudabadi/portfolio/internal/view"
)

// DefaultTTL is how long an idle session without a live connection is kept.
const DefaultTTL = 30 * time.Minute

// Manager is the in-memory session registry. Sessions are never persisted;
// a reload always starts from a fresh session.
type Manager struct {
	contents view.Contents
	renderer Renderer
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a registry. A non-positive ttl selects DefaultTTL.
func NewManager(contents view.Contents, renderer Renderer, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		contents: contents,
		renderer: renderer,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a session in its initial state for lang (locale.Default when
// empty).
func (m *Manager) Create(lang locale.Code) *Session {
	s := newSession(uuid.NewString(), m.contents, m.renderer, lang, m.now())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session and marks it as seen.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	s.touch(m.now())
	return s, nil
}

// Remove drops a session. Unknown ids are ignored.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL that have no live
// connection attached, and returns how many were evicted.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, s := range m.sessions {
		if s.attached.Load() > 0 || s.idleSince().After(cutoff) {
			continue
		}
		delete(m.sessions, id)
		evicted++
	}
	return evicted
}

// Run sweeps every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				log.Printf("session: evicted %d idle sessions", n)
			}
		}
	}
}

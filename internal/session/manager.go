package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is an in-memory session registry keyed by opaque UUID ids.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Resolve returns the session for the given id, creating a fresh one when
// the id is empty or unknown.
func (m *Manager) Resolve(id string) *Session {
	if id != "" {
		m.mu.RLock()
		s, ok := m.sessions[id]
		m.mu.RUnlock()
		if ok {
			return s
		}
	}
	return m.Create()
}

func (m *Manager) Create() *Session {
	s := newSession(uuid.New().String())
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

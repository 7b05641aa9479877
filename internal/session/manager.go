package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/storage"
)

// ErrUnauthorized is returned when session token is unknown.
var ErrUnauthorized = errors.New("unauthorized")

// Manager keeps sessions of logged in viewers.
type Manager struct {
	s storage.Storage

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates new instance of Manager.
func NewManager(s storage.Storage) *Manager {
	return &Manager{
		s:        s,
		sessions: make(map[string]*Session),
	}
}

// Login opens a session for viewer authenticated elsewhere.
func (m *Manager) Login(viewer entities.User) *Session {
	s := newSession(uuid.New().String(), viewer, m.s)

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()

	log.WithField("viewer", viewer.ID).Info("session opened")

	return s
}

// Logout closes session: pending loads are cancelled and views' state is dropped.
func (m *Manager) Logout(token string) error {
	m.mu.Lock()
	s, ok := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()

	if !ok {
		return ErrUnauthorized
	}

	s.close()

	log.WithField("viewer", s.Viewer.ID).Info("session closed")

	return nil
}

// Get returns session by token.
func (m *Manager) Get(token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrUnauthorized
	}

	return s, nil
}

// Close closes all sessions.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}

// Len returns count of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// Name ...
func (m *Manager) Name() string {
	return "sessions"
}

// Ping reports count of open sessions.
func (m *Manager) Ping(context.Context) (interface{}, error) {
	return map[string]int{"open": m.Len()}, nil
}

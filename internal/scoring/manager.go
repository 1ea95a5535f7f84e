package scoring

import "sync"

// Manager hands out at most one live Session per match. Sessions are
// created on demand by resuming from the gateway, so a server restart (or
// eviction) loses nothing that was persisted.
type Manager struct {
	mu       sync.Mutex
	gw       Gateway
	sessions map[uint]*Session
}

func NewManager(gw Gateway) *Manager {
	return &Manager{gw: gw, sessions: make(map[uint]*Session)}
}

// Session returns the live session for a match, resuming one from
// persisted state if none is held.
func (m *Manager) Session(matchID uint) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[matchID]; ok {
		return s, nil
	}
	s, err := NewSession(m.gw, matchID)
	if err != nil {
		return nil, err
	}
	m.sessions[matchID] = s
	return s, nil
}

// Evict drops the in-memory session for a match. Used once a match is
// concluded; a later request resumes from persisted state again.
func (m *Manager) Evict(matchID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, matchID)
}

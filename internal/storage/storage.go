package storage

import (
	"sync"

	"github.com/monsoon-labs/rainify/internal/models"
)

// SessionStore keeps completed transformations in memory for the lifetime
// of the process. Nothing is persisted across restarts.
type SessionStore struct {
	sessions map[string]*models.TransformSession
	latestID string
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.TransformSession),
	}
}

func (s *SessionStore) Get(sessionID string) (*models.TransformSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *models.TransformSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
	s.latestID = sessionID
}

// Latest returns the most recently stored session, if any.
func (s *SessionStore) Latest() (*models.TransformSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[s.latestID]
	return session, exists
}

func (s *SessionStore) GetAll() map[string]*models.TransformSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.TransformSession, len(s.sessions))
	for k, v := range s.sessions {
		result[k] = v
	}
	return result
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	if s.latestID == sessionID {
		s.latestID = ""
	}
}

package sessionstore

import (
	"context"
	"sync"

	"booking-assistant/internal/domain/conversation"
	"booking-assistant/internal/pkg/errs"
)

// MemoryStore keeps sessions in-process. It is the default store; turns for
// one session are already serialized upstream, the lock here only guards the
// map across different sessions.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]conversation.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]conversation.Session),
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*conversation.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	copied := session
	return &copied, nil
}

func (s *MemoryStore) Save(_ context.Context, session *conversation.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	return nil
}

package consent

import (
	"context"
	"sync"
)

// Store persists consent preferences per visitor.
type Store interface {
	Get(ctx context.Context, visitorID string) (Preferences, bool, error)
	Save(ctx context.Context, visitorID string, p Preferences) error
}

type memoryStore struct {
	mu    sync.RWMutex
	prefs map[string]Preferences
}

func NewMemoryStore() Store {
	return &memoryStore{prefs: make(map[string]Preferences)}
}

func (s *memoryStore) Get(ctx context.Context, visitorID string) (Preferences, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prefs[visitorID]
	return p, ok, nil
}

func (s *memoryStore) Save(ctx context.Context, visitorID string, p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[visitorID] = p
	return nil
}

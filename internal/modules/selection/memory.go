package selection

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu  sync.RWMutex
	ids []int
}

// NewMemoryStore creates an in-process selection store, used when no
// database is configured and by tests.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Selected(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out, nil
}

func (s *memoryStore) Save(ctx context.Context, ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make([]int, len(ids))
	copy(s.ids, ids)
	return nil
}

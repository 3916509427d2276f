package cart

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	carts map[string][]LineItem
}

// NewMemoryStore creates an in-process cart store, used when no database is
// configured and by tests.
func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[string][]LineItem)}
}

func cartKey(tenantID, cartID string) string { return tenantID + "/" + cartID }

func (s *memoryStore) Get(ctx context.Context, tenantID, cartID string) ([]LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[cartKey(tenantID, cartID)]
	out := make([]LineItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *memoryStore) Save(ctx context.Context, tenantID, cartID string, items []LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]LineItem, len(items))
	copy(stored, items)
	s.carts[cartKey(tenantID, cartID)] = stored
	return nil
}

func (s *memoryStore) Clear(ctx context.Context, tenantID, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartKey(tenantID, cartID))
	return nil
}

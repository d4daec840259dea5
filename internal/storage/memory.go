package storage

import (
	"context"
	"sync"
)

// MemoryStore is the volatile Store: contents last exactly as long as the
// process, which is the lifetime of a "browsing context" here. It holds the
// current session and the selected-trip handoff between dashboard and
// itinerary.
//
// The mutex is not strictly needed under the one-event-at-a-time model, but
// it keeps the store safe for tests that exercise it directly.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty volatile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// compile-time check: MemoryStore must satisfy Store.
var _ Store = (*MemoryStore)(nil)

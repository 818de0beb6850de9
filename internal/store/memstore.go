package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// memStore implements Store in memory. Used in tests and as an ephemeral
// backend; values round-trip through JSON so load/save semantics match the
// durable backends exactly.
type memStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() Store {
	return &memStore{values: make(map[string][]byte)}
}

func (s *memStore) Load(ctx context.Context, key string, dest any) error {
	s.mu.RLock()
	data, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode state for %s: %w", key, err)
	}
	return nil
}

func (s *memStore) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state for %s: %w", key, err)
	}

	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()
	return nil
}

package repository

import (
	"context"
	"sync"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

// MemoryStore keeps the durable collections in process memory. It is the
// default store when no Redis or Postgres backing is configured, and the
// store unit tests run against.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ ports.ListStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[key] = stored
	return nil
}

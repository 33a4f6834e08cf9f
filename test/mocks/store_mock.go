// Package mocks provides mock implementations of port interfaces for testing.
// In hexagonal architecture, ports define the contracts between the core domain
// and external adapters. Mocks implement these interfaces to enable isolated testing.
package mocks

import (
	"context"
	"sync"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

// MockListStore implements ports.ListStore for testing.
// This mock allows us to test the simulated backend without Redis or Postgres.
type MockListStore struct {
	mu sync.RWMutex

	// In-memory storage for testing
	data map[string][]byte

	// Call tracking for verification
	GetCalls []string
	PutCalls []string

	// Error injection for testing error scenarios
	GetError error
	PutError error
}

// Ensure MockListStore implements ports.ListStore at compile time.
var _ ports.ListStore = (*MockListStore)(nil)

// NewMockListStore creates a new mock store with empty storage.
func NewMockListStore() *MockListStore {
	return &MockListStore{
		data: make(map[string][]byte),
	}
}

// Seed places raw bytes under a key for test setup.
func (m *MockListStore) Seed(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
}

// Get returns the stored bytes for a key.
// This implements ports.ListStore.Get
func (m *MockListStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, key)
	m.mu.Unlock()

	if m.GetError != nil {
		return nil, false, m.GetError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Put stores bytes under a key.
// This implements ports.ListStore.Put
func (m *MockListStore) Put(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PutCalls = append(m.PutCalls, key)

	if m.PutError != nil {
		return m.PutError
	}

	m.data[key] = append([]byte(nil), data...)
	return nil
}

// Stored returns a copy of the current bytes under a key.
func (m *MockListStore) Stored(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// Reset clears all stored data and call tracking.
// Use this between tests to ensure isolation.
func (m *MockListStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string][]byte)
	m.GetCalls = nil
	m.PutCalls = nil
	m.GetError = nil
	m.PutError = nil
}

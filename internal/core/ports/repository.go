package ports

import "context"

// ListStore is the durable key-value area behind the simulated backend: one
// JSON-encoded collection per key, read and written whole. Implementations
// may back this with memory, Redis or Postgres without the controllers
// noticing. Writes are read-modify-write with no versioning; last write wins
// is the stated policy, acceptable for a single interactive session.
type ListStore interface {
	// Get returns the raw payload for key. The boolean reports whether the
	// key exists; a missing key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
}

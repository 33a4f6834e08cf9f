package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/config"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

// SQLStore keeps each durable collection as one JSON payload row in
// Postgres. The layout stays the key-to-blob contract of ports.ListStore;
// swapping it in changes nothing above the port.
type SQLStore struct {
	db *sql.DB
	cb *gobreaker.CircuitBreaker
}

var _ ports.ListStore = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		db: db,
		cb: config.NewCircuitBreaker("PostgreSQL-Store"),
	}
}

// EnsureSchema creates the collections table if it does not exist yet.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS portal_collections (
            name       TEXT PRIMARY KEY,
            payload    TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		var payload string
		err := s.db.QueryRowContext(ctx,
			"SELECT payload FROM portal_collections WHERE name = $1",
			key,
		).Scan(&payload)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []byte(payload), nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("sql get %s: %w", key, err)
	}
	if result == nil {
		return nil, false, nil
	}
	return result.([]byte), true, nil
}

func (s *SQLStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO portal_collections (name, payload, updated_at)
             VALUES ($1, $2, NOW())
             ON CONFLICT (name) DO UPDATE SET payload = $2, updated_at = NOW()`,
			key, string(data),
		)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("sql put %s: %w", key, err)
	}
	return nil
}

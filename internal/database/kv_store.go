package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/flowmaster/internal/storage"
)

// KVStore is a storage.KeyValue backed by the kv_store table.
type KVStore struct {
	db *sql.DB
}

// NewKVStore wraps an initialized database.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// GetItem returns the value stored under key, or storage.ErrNotFound.
func (s *KVStore) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// SetItem upserts value under key.
func (s *KVStore) SetItem(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key if present.
func (s *KVStore) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Compile-time verification that *KVStore implements storage.KeyValue
var _ storage.KeyValue = (*KVStore)(nil)

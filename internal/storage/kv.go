// Package storage provides the key-value string storage the application state
// is mirrored into, and a JSON codec on top of it.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// KeyValue is a string key-value store in the style of browser local storage.
type KeyValue interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// MemoryKV is an in-process KeyValue, used in tests and when no durable
// storage is configured.
type MemoryKV struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string]string)}
}

// GetItem returns the value stored under key or ErrNotFound.
func (m *MemoryKV) GetItem(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// SetItem stores value under key.
func (m *MemoryKV) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (m *MemoryKV) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Compile-time verification that *MemoryKV implements KeyValue
var _ KeyValue = (*MemoryKV)(nil)

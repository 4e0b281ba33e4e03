package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Mirror persists one value under a fixed key.
type Mirror interface {
	// Load decodes the stored value into v. found is false when nothing is stored.
	Load(ctx context.Context, v any) (found bool, err error)
	// Save replaces the stored value with v.
	Save(ctx context.Context, v any) error
}

// envelope matches the layout the board has always been stored in:
// {"state": {...}, "version": 0}
type envelope struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

// JSONMirror stores a value as versioned JSON under Key.
type JSONMirror struct {
	KV      KeyValue
	Key     string
	Version int
}

// NewJSONMirror creates a mirror writing version 0 envelopes under key.
func NewJSONMirror(kv KeyValue, key string) *JSONMirror {
	return &JSONMirror{KV: kv, Key: key}
}

// Load reads and decodes the stored state.
func (m *JSONMirror) Load(ctx context.Context, v any) (bool, error) {
	raw, err := m.KV.GetItem(ctx, m.Key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", m.Key, err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", m.Key, err)
	}
	if len(env.State) == 0 || string(env.State) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(env.State, v); err != nil {
		return false, fmt.Errorf("failed to decode %s state: %w", m.Key, err)
	}
	return true, nil
}

// Save encodes v and writes it.
func (m *JSONMirror) Save(ctx context.Context, v any) error {
	state, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s state: %w", m.Key, err)
	}
	data, err := json.Marshal(envelope{State: state, Version: m.Version})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", m.Key, err)
	}
	if err := m.KV.SetItem(ctx, m.Key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.Key, err)
	}
	return nil
}

// Compile-time verification that *JSONMirror implements Mirror
var _ Mirror = (*JSONMirror)(nil)

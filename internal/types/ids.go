package types

import "github.com/google/uuid"

// Identifiers are opaque UUIDv4 strings generated when an entity is created and
// stable for its lifetime.

// IDFunc generates a new unique identifier.
type IDFunc func() string

// NewID returns a fresh random (version 4) UUID string.
func NewID() string {
	return uuid.NewString()
}

// IsID reports whether s parses as a UUID.
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// SequentialIDs returns an IDFunc that yields deterministic, valid UUIDs.
// Tests use it to get stable ids without depending on randomness.
func SequentialIDs() IDFunc {
	var n uint64
	return func() string {
		n++
		var b [16]byte
		for i := 0; i < 8; i++ {
			b[15-i] = byte(n >> (8 * i))
		}
		b[6] = (b[6] & 0x0f) | 0x40
		b[8] = (b[8] & 0x3f) | 0x80
		return uuid.UUID(b).String()
	}
}

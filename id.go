package splitz

import "github.com/google/uuid"

// NewID generates a globally unique, time-sortable UUIDv7 (RFC 9562).
// Used for document ids and per-chunk ids; never reused within a process.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

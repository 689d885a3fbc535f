// Package security provides identifier generation utilities
package security

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenerateULID generates a new ULID string.
func GenerateULID() string {
	return ulid.Make().String()
}

// GeneratePrefixedID returns "<prefix>-<ULID>", lexically ordered by creation time.
func GeneratePrefixedID(prefix string) string {
	return prefix + "-" + GenerateULID()
}

// GenerateClientID returns a random identifier for transient connections and requests.
func GenerateClientID() string {
	return uuid.NewString()
}

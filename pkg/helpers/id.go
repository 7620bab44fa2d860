package helpers

import "github.com/google/uuid"

// NewID returns a random UUID string, the id format used across entities and
// object paths.
func NewID() string {
	return uuid.NewString()
}

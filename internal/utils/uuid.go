package utils

import "github.com/google/uuid"

// NewID returns a random (version 4) UUID string. It is used for loading
// handle tokens and negotiation ids.
func NewID() string {
	return uuid.NewString()
}

// Package utils provides general-purpose helper utilities used across the
// go-sign-in client: context keys, HTTP client initialization, bearer/JWT
// parsing, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// NegotiationIDCtxKey is the key under which the current negotiation id is
// stored in the context. It correlates log entries of one negotiation.
var NegotiationIDCtxKey = contextKey("negotiationID")

// WithNegotiationID returns a copy of ctx carrying id.
func WithNegotiationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, NegotiationIDCtxKey, id)
}

// GetNegotiationIDFromContext retrieves the negotiation id from the context.
//
//   - ok == true  - value is found and is a string
//   - ok == false - value is missing or has an unexpected type
func GetNegotiationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(NegotiationIDCtxKey).(string)
	return id, ok
}

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying request-scoped values in a context, HTTP
// client initialization, HTTP header parsing and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CycleIDCtxKey is the key used to store the submit cycle identifier in the
// context, so that transport logs can be correlated with the cycle that
// issued the request.
var CycleIDCtxKey = contextKey("cycleID")

// WithCycleID returns a copy of ctx carrying the cycle identifier id.
func WithCycleID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CycleIDCtxKey, id)
}

// CycleIDFromContext retrieves the cycle identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func CycleIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CycleIDCtxKey).(string)
	return id, ok && id != ""
}

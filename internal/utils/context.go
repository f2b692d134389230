// Package utils holds small helpers shared by the HTTP layer and the
// services: typed context keys, JSON response writing, the resty client
// wrapper, JWT issuing and parsing, and UUIDv7 generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here cannot
// collide with string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's ID (int64) in a request
// context. It is set by the auth middleware only.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the authenticated user's ID. ok is false when
// the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

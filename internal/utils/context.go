// Package utils provides small helpers shared by both halves of
// cryptodiary: type-safe context keys, bearer-header parsing, and JWT
// generation/validation.
package utils

import "context"

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with other packages storing string-keyed values.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated account id in a request context.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the account id placed in ctx by the auth
// middleware. ok is false when the value is missing or of the wrong type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

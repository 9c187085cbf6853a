package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT used for bearer authentication between the
// client and the entry server.
//
// SignedString holds the compact serialized form ready for the
// Authorization header. UserID caches the parsed "sub" claim.
type Token struct {
	// Token is the underlying parsed JWT. Excluded from JSON because only
	// the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the account identifier from the token's "sub" claim
// and parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("extract subject from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("convert token subject to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

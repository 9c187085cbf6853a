package models

import "time"

// User is a diary account. The account password authenticates against the
// server and is unrelated to the diary passphrase that derives the client
// encryption key; the server never learns the latter.
type User struct {
	UserID int64 `json:"user_id,omitempty"`

	// Email is the unique account identifier.
	Email string `json:"email"`

	// Password carries the plaintext account password in register/login
	// requests only. Never stored; the server keeps only PasswordHash.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	// Server-side only, never serialized.
	PasswordHash string `json:"-"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

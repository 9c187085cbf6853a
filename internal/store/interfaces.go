package store

import (
	"context"
	"time"

	"github.com/dsmirnov/cryptodiary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotReader is the read-only view of the client entry cache handed to
// components that must not replace the snapshot (the decryption/search
// engine, the TUI). Only the sync service holds the full [*Snapshot] and
// with it the right to call ReplaceAll.
type SnapshotReader interface {
	// Get returns the encrypted entry with the given id, or
	// [ErrEntryNotFound].
	Get(id string) (models.Entry, error)

	// All returns the snapshot's entries in server-provided order.
	All() []models.Entry
}

// EntryRepository is the server-side persistence contract for encrypted
// entries. The server stores ciphertext envelopes verbatim; nothing in this
// interface can observe plaintext.
type EntryRepository interface {
	// ListByUser returns every entry owned by userID, newest modification
	// first, with timestamps formatted in the wire layout.
	ListByUser(ctx context.Context, userID int64) ([]models.Entry, error)

	// Create persists a new entry row. The caller supplies the assigned id
	// and creation time.
	Create(ctx context.Context, userID int64, entry models.Entry) error

	// Update replaces both ciphertext fields of an existing entry and bumps
	// date_modified to now. Returns [ErrEntryNotFound] for an unknown id and
	// [ErrEntryNotOwned] when the row belongs to a different account.
	Update(ctx context.Context, userID int64, id string, payload models.EntryPayload, now time.Time) error

	// Delete removes an entry row with the same not-found/not-owned
	// semantics as Update.
	Delete(ctx context.Context, userID int64, id string) error
}

// UserRepository is the server-side persistence contract for accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyRegistered] on a duplicate
	// email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email, or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

package service

import (
	"context"

	"github.com/dsmirnov/cryptodiary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EntrySyncService performs the CRUD synchronization protocol against the
// entry server: encrypt before send, refresh the snapshot from the server
// after every successful mutation. The local snapshot is never patched in
// place, so the client only ever displays server-confirmed state.
type EntrySyncService interface {
	// List fetches all encrypted entries and installs them into the
	// snapshot. On failure the previous snapshot is retained.
	List(ctx context.Context) error

	// Create validates, encrypts, and persists a new entry, then re-lists.
	// Validation failures (see validators.ErrValidation) are returned
	// before any network request is made.
	Create(ctx context.Context, title, content string) error

	// Update validates, encrypts, and replaces the entry with the given
	// id, then re-lists. Same validation contract as Create.
	Update(ctx context.Context, id, title, content string) error

	// Delete removes the entry with the given id, then re-lists.
	Delete(ctx context.Context, id string) error
}

// RenderEngine derives plaintext views from the encrypted snapshot on
// demand. It is side-effect-free: with an unchanged snapshot and unchanged
// key material, repeated calls yield identical output, which the UI relies
// on for re-rendering on every search keystroke.
type RenderEngine interface {
	// RenderList decrypts every snapshot entry and applies the keyword and
	// date filters. Entries that fail decryption degrade to sentinel rows
	// instead of disappearing. Returns crypto.ErrKeyMissing if the session
	// has no key material at all.
	RenderList(keyword, day string) ([]models.EntryListItem, error)

	// DecryptOne returns the full plaintext view of one entry for editing.
	// Fails with store.ErrEntryNotFound for an unknown id and
	// [ErrDecryptionFailed] when the ciphertext cannot be trusted.
	DecryptOne(id string) (models.DecryptedEntry, error)
}

// Confirmer presents a yes/no prompt and invokes onConfirm only on an
// explicit affirmative answer; on decline it does nothing. One-shot: no
// listener state survives the call.
type Confirmer interface {
	Ask(title, message string, onConfirm func())
}

// ConfirmerFunc adapts a function to the [Confirmer] interface.
type ConfirmerFunc func(title, message string, onConfirm func())

// Ask implements [Confirmer].
func (f ConfirmerFunc) Ask(title, message string, onConfirm func()) {
	f(title, message, onConfirm)
}

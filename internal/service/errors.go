package service

import "errors"

var (
	// ErrDecryptionFailed marks an entry whose ciphertext could not be
	// turned into valid plaintext: the cipher reported a malformed
	// envelope, or the decrypted bytes failed structural validation
	// (wrong passphrase). Recoverable; surfaced per entry.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrNoEntryBound is returned by editor operations that require an
	// existing entry (update, delete) while the editor is in new-entry
	// mode.
	ErrNoEntryBound = errors.New("no entry bound in editor")

	// ErrInvalidCredentials is returned by the server auth service when
	// the email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMissingEncryptedFields is returned by the server entry service
	// when a create or update request omits a ciphertext field.
	ErrMissingEncryptedFields = errors.New("missing encrypted title or content")
)

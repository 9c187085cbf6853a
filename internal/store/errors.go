package store

import "errors"

var (
	// ErrEntryNotFound is returned when no entry with the requested id
	// exists, either in the client snapshot or in the server database.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryNotOwned is returned by server repositories when the entry
	// exists but belongs to a different account.
	ErrEntryNotOwned = errors.New("entry belongs to another user")

	// ErrEmailAlreadyRegistered is returned on a unique-constraint
	// violation for the users.email column.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned when a login lookup matches no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrExecutingQuery wraps driver-level query execution failures.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow wraps row scan failures.
	ErrScanningRow = errors.New("error scanning row")
)

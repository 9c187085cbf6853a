package adapter

import (
	"context"

	"github.com/dsmirnov/cryptodiary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's transport to the entry server. Everything
// crossing this boundary is already encrypted; the adapter moves opaque
// envelopes and never touches plaintext or key material.
type ServerAdapter interface {
	// Register creates an account and stores the returned bearer token for
	// subsequent authenticated requests.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates an existing account and stores the bearer token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// SetToken installs a bearer token; Token returns the current one.
	SetToken(token string)
	Token() string

	// ListEntries fetches all encrypted entries for the authenticated user
	// in server order.
	ListEntries(ctx context.Context) ([]models.Entry, error)

	// CreateEntry persists a new encrypted entry.
	CreateEntry(ctx context.Context, payload models.EntryPayload) (models.MessageResponse, error)

	// UpdateEntry replaces both ciphertext fields of an existing entry.
	UpdateEntry(ctx context.Context, id string, payload models.EntryPayload) (models.MessageResponse, error)

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, id string) error
}

package service

import (
	"context"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/models"
)

// AuthService is the server-side account service.
type AuthService interface {
	// Register creates an account and issues a bearer token for it.
	// Returns store.ErrEmailAlreadyRegistered on a duplicate email.
	Register(ctx context.Context, user models.User) (models.User, models.Token, error)

	// Login verifies credentials and issues a bearer token. Unknown email
	// and wrong password are both reported as [ErrInvalidCredentials].
	Login(ctx context.Context, user models.User) (models.User, models.Token, error)

	// ValidateToken checks a bearer token and returns the account id it
	// was issued for.
	ValidateToken(tokenString string) (int64, error)
}

// EntryService is the server-side entry service. It treats both ciphertext
// fields as opaque strings; plaintext never reaches this layer.
type EntryService interface {
	// List returns the user's entries, newest modification first.
	List(ctx context.Context, userID int64) ([]models.Entry, error)

	// Create stores a new entry, assigning its opaque id and timestamps.
	// Returns [ErrMissingEncryptedFields] if either ciphertext is empty.
	Create(ctx context.Context, userID int64, payload models.EntryPayload) (models.Entry, error)

	// Update replaces both ciphertext fields of an existing entry and
	// returns the new modification timestamp. Same validation as Create;
	// propagates store.ErrEntryNotFound and store.ErrEntryNotOwned.
	Update(ctx context.Context, userID int64, id string, payload models.EntryPayload) (models.Entry, error)

	// Delete removes an entry with the same ownership semantics as Update.
	Delete(ctx context.Context, userID int64, id string) error
}

// Services bundles the server-side service layer for handler wiring.
type Services struct {
	Auth    AuthService
	Entries EntryService
}

// NewServices wires the server service layer over the store repositories.
func NewServices(entries store.EntryRepository, users store.UserRepository, cfg AuthConfig, log *logger.Logger) *Services {
	return &Services{
		Auth:    NewAuthService(users, cfg, log),
		Entries: NewServerEntryService(entries, log),
	}
}

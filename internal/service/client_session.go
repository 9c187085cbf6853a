package service

import (
	"context"
	"fmt"

	"github.com/dsmirnov/cryptodiary/internal/adapter"
	"github.com/dsmirnov/cryptodiary/internal/crypto"
	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/models"
)

// SessionService owns the client session lifecycle: account authentication
// against the server, unlocking the keyring with the diary passphrase, and
// the logout teardown that discards all client state. It is the only writer
// of the session key material.
type SessionService struct {
	adapter  adapter.ServerAdapter
	keyring  *crypto.Keyring
	snapshot *store.Snapshot
	logger   *logger.Logger
}

// NewSessionService constructs a [SessionService].
func NewSessionService(serverAdapter adapter.ServerAdapter, keyring *crypto.Keyring, snapshot *store.Snapshot, log *logger.Logger) *SessionService {
	return &SessionService{
		adapter:  serverAdapter,
		keyring:  keyring,
		snapshot: snapshot,
		logger:   log,
	}
}

// Register creates a new account. The diary passphrase is not involved:
// the server learns only the account credentials.
func (s *SessionService) Register(ctx context.Context, email, password string) error {
	if _, err := s.adapter.Register(ctx, models.User{Email: email, Password: password}); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	s.logger.Info().Str("email", email).Msg("account registered")
	return nil
}

// Login authenticates an existing account.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	if _, err := s.adapter.Login(ctx, models.User{Email: email, Password: password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	s.logger.Info().Str("email", email).Msg("logged in")
	return nil
}

// Unlock installs the diary passphrase as the session key material. Called
// once per session; every encrypt/decrypt afterwards uses this material.
func (s *SessionService) Unlock(passphrase string) error {
	if err := s.keyring.Unlock(passphrase); err != nil {
		return fmt.Errorf("unlock keyring: %w", err)
	}
	return nil
}

// Unlocked reports whether session key material is present.
func (s *SessionService) Unlocked() bool {
	return s.keyring.Unlocked()
}

// Logout discards all client state: key material, the entry snapshot, and
// the bearer token. No server call is made; the token is stateless.
func (s *SessionService) Logout() {
	s.keyring.Clear()
	s.snapshot.Clear()
	s.adapter.SetToken("")
	s.logger.Info().Msg("session ended")
}

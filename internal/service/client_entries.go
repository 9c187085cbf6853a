package service

import (
	"context"
	"fmt"

	"github.com/dsmirnov/cryptodiary/internal/adapter"
	"github.com/dsmirnov/cryptodiary/internal/crypto"
	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/internal/validators"
	"github.com/dsmirnov/cryptodiary/models"
)

// entrySyncService is the production implementation of [EntrySyncService].
// It is the only component allowed to call Snapshot.ReplaceAll.
type entrySyncService struct {
	snapshot *store.Snapshot
	adapter  adapter.ServerAdapter
	cipher   crypto.Cipher
	logger   *logger.Logger
}

// NewEntrySyncService constructs an [EntrySyncService] over the given
// snapshot, transport, and cipher.
func NewEntrySyncService(snapshot *store.Snapshot, serverAdapter adapter.ServerAdapter, cipher crypto.Cipher, log *logger.Logger) EntrySyncService {
	return &entrySyncService{
		snapshot: snapshot,
		adapter:  serverAdapter,
		cipher:   cipher,
		logger:   log,
	}
}

// List implements [EntrySyncService]. The snapshot is replaced only after
// the fetch succeeds; any transport failure leaves the previous (stale but
// consistent) snapshot in place.
func (s *entrySyncService) List(ctx context.Context) error {
	entries, err := s.adapter.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	s.snapshot.ReplaceAll(entries)
	s.logger.Debug().Int("count", len(entries)).Msg("snapshot replaced")
	return nil
}

// Create implements [EntrySyncService].
func (s *entrySyncService) Create(ctx context.Context, title, content string) error {
	if err := validators.ValidateEntryInput(title, content); err != nil {
		return err
	}

	payload, err := s.encryptPayload(title, content)
	if err != nil {
		return err
	}

	if _, err = s.adapter.CreateEntry(ctx, payload); err != nil {
		return fmt.Errorf("create entry: %w", err)
	}

	return s.List(ctx)
}

// Update implements [EntrySyncService]. The id is expected to come from the
// editor session, which is the sole authority on whether a save is a create
// or an update.
func (s *entrySyncService) Update(ctx context.Context, id, title, content string) error {
	if err := validators.ValidateEntryInput(title, content); err != nil {
		return err
	}

	payload, err := s.encryptPayload(title, content)
	if err != nil {
		return err
	}

	if _, err = s.adapter.UpdateEntry(ctx, id, payload); err != nil {
		return fmt.Errorf("update entry %s: %w", id, err)
	}

	return s.List(ctx)
}

// Delete implements [EntrySyncService].
func (s *entrySyncService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete entry %s: %w", id, err)
	}

	return s.List(ctx)
}

func (s *entrySyncService) encryptPayload(title, content string) (models.EntryPayload, error) {
	encTitle, err := s.cipher.Encrypt(title)
	if err != nil {
		return models.EntryPayload{}, fmt.Errorf("encrypt title: %w", err)
	}
	encContent, err := s.cipher.Encrypt(content)
	if err != nil {
		return models.EntryPayload{}, fmt.Errorf("encrypt content: %w", err)
	}

	return models.EntryPayload{EncryptedTitle: encTitle, EncryptedContent: encContent}, nil
}

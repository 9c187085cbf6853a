package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/models"
)

// serverEntryService is the production implementation of [EntryService].
type serverEntryService struct {
	entries store.EntryRepository
	logger  *logger.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewServerEntryService constructs an [EntryService] over the entry
// repository.
func NewServerEntryService(entries store.EntryRepository, log *logger.Logger) EntryService {
	return &serverEntryService{entries: entries, logger: log, now: time.Now}
}

// List implements [EntryService].
func (s *serverEntryService) List(ctx context.Context, userID int64) ([]models.Entry, error) {
	return s.entries.ListByUser(ctx, userID)
}

// Create implements [EntryService].
func (s *serverEntryService) Create(ctx context.Context, userID int64, payload models.EntryPayload) (models.Entry, error) {
	if payload.EncryptedTitle == "" || payload.EncryptedContent == "" {
		return models.Entry{}, ErrMissingEncryptedFields
	}

	now := models.FormatTime(s.now())
	entry := models.Entry{
		ID:               uuid.NewString(),
		EncryptedTitle:   payload.EncryptedTitle,
		EncryptedContent: payload.EncryptedContent,
		DateCreated:      now,
		DateModified:     now,
	}

	if err := s.entries.Create(ctx, userID, entry); err != nil {
		return models.Entry{}, err
	}

	logger.FromContext(ctx).Debug().Str("entry_id", entry.ID).Msg("entry created")
	return entry, nil
}

// Update implements [EntryService].
func (s *serverEntryService) Update(ctx context.Context, userID int64, id string, payload models.EntryPayload) (models.Entry, error) {
	if payload.EncryptedTitle == "" || payload.EncryptedContent == "" {
		return models.Entry{}, ErrMissingEncryptedFields
	}

	now := s.now()
	if err := s.entries.Update(ctx, userID, id, payload, now); err != nil {
		return models.Entry{}, err
	}

	return models.Entry{
		ID:               id,
		EncryptedTitle:   payload.EncryptedTitle,
		EncryptedContent: payload.EncryptedContent,
		DateModified:     models.FormatTime(now),
	}, nil
}

// Delete implements [EntryService].
func (s *serverEntryService) Delete(ctx context.Context, userID int64, id string) error {
	return s.entries.Delete(ctx, userID, id)
}

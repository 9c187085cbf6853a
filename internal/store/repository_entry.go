package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/models"
)

// entryRepository is the SQL implementation of [EntryRepository]. It works
// on the "entries" table and treats both ciphertext columns as opaque text.
type entryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, log *logger.Logger) EntryRepository {
	log.Debug().Msg("creating entry repository")
	return &entryRepository{db: db, logger: log}
}

// ListByUser implements [EntryRepository].
func (r *entryRepository) ListByUser(ctx context.Context, userID int64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("id", "encrypted_title", "encrypted_content", "date_created", "date_modified").
		From("entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date_modified DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("list entries query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, 16)
	for rows.Next() {
		var (
			e        models.Entry
			created  time.Time
			modified time.Time
		)
		if err = rows.Scan(&e.ID, &e.EncryptedTitle, &e.EncryptedContent, &created, &modified); err != nil {
			log.Err(err).Int64("user_id", userID).Msg("scan entry row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.DateCreated = models.FormatTime(created)
		e.DateModified = models.FormatTime(modified)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

// Create implements [EntryRepository].
func (r *entryRepository) Create(ctx context.Context, userID int64, entry models.Entry) error {
	log := logger.FromContext(ctx)

	created, err := time.Parse(models.TimeLayout, entry.DateCreated)
	if err != nil {
		return fmt.Errorf("parse date_created: %w", err)
	}
	modified, err := time.Parse(models.TimeLayout, entry.DateModified)
	if err != nil {
		return fmt.Errorf("parse date_modified: %w", err)
	}

	query, args, err := r.db.builder().
		Insert("entries").
		Columns("id", "user_id", "encrypted_title", "encrypted_content", "date_created", "date_modified").
		Values(entry.ID, userID, entry.EncryptedTitle, entry.EncryptedContent, created, modified).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Int64("user_id", userID).Str("entry_id", entry.ID).Msg("insert entry failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Update implements [EntryRepository].
func (r *entryRepository) Update(ctx context.Context, userID int64, id string, payload models.EntryPayload, now time.Time) error {
	if err := r.checkOwnership(ctx, userID, id); err != nil {
		return err
	}

	query, args, err := r.db.builder().
		Update("entries").
		Set("encrypted_title", payload.EncryptedTitle).
		Set("encrypted_content", payload.EncryptedContent).
		Set("date_modified", now.UTC()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("entry_id", id).Msg("update entry failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Delete implements [EntryRepository].
func (r *entryRepository) Delete(ctx context.Context, userID int64, id string) error {
	if err := r.checkOwnership(ctx, userID, id); err != nil {
		return err
	}

	query, args, err := r.db.builder().
		Delete("entries").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("entry_id", id).Msg("delete entry failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// checkOwnership distinguishes "no such entry" from "someone else's entry"
// so handlers can answer 404 and 403 respectively.
func (r *entryRepository) checkOwnership(ctx context.Context, userID int64, id string) error {
	query, args, err := r.db.builder().
		Select("user_id").
		From("entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build ownership query: %w", err)
	}

	var owner int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrEntryNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if owner != userID {
		return ErrEntryNotOwned
	}

	return nil
}

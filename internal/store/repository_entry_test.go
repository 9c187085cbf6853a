package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:          conn,
		driver:      "pgx",
		placeholder: sq.Dollar,
		errs:        postgresErrorClassifier{},
		logger:      logger.Nop(),
	}, mock
}

func TestEntryRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	modified := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
	created := modified.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, encrypted_title, encrypted_content, date_created, date_modified FROM entries WHERE user_id = $1 ORDER BY date_modified DESC",
	)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "encrypted_title", "encrypted_content", "date_created", "date_modified"}).
			AddRow("id-1", "ct-title", "ct-content", created, modified))

	entries, err := repo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "id-1", entries[0].ID)
	assert.Equal(t, "ct-title", entries[0].EncryptedTitle)
	assert.Equal(t, "2024-01-02 10:30:00", entries[0].DateModified)
	assert.Equal(t, "2024-01-02 09:30:00", entries[0].DateCreated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO entries (id,user_id,encrypted_title,encrypted_content,date_created,date_modified) VALUES ($1,$2,$3,$4,$5,$6)",
	)).
		WithArgs("id-1", int64(7), "ct-title", "ct-content", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), 7, models.Entry{
		ID:               "id-1",
		EncryptedTitle:   "ct-title",
		EncryptedContent: "ct-content",
		DateCreated:      "2024-01-02 10:30:00",
		DateModified:     "2024-01-02 10:30:00",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM entries WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	err := repo.Update(context.Background(), 7, "missing", models.EntryPayload{}, time.Now())
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_Update_NotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM entries WHERE id = $1")).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(99)))

	err := repo.Update(context.Background(), 7, "id-1", models.EntryPayload{}, time.Now())
	assert.ErrorIs(t, err, ErrEntryNotOwned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_Update_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM entries WHERE id = $1")).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE entries SET encrypted_title = $1, encrypted_content = $2, date_modified = $3 WHERE id = $4 AND user_id = $5",
	)).
		WithArgs("new-ct-title", "new-ct-content", sqlmock.AnyArg(), "id-1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 7, "id-1",
		models.EntryPayload{EncryptedTitle: "new-ct-title", EncryptedContent: "new-ct-content"},
		time.Now())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_Delete_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM entries WHERE id = $1")).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM entries WHERE id = $1 AND user_id = $2")).
		WithArgs("id-1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7, "id-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

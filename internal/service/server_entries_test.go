package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/mock"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/models"
)

var fixedNow = time.Date(2026, 8, 25, 12, 30, 0, 0, time.UTC)

func newServerEntryFixture(t *testing.T) (*mock.MockEntryRepository, EntryService) {
	t.Helper()

	repo := mock.NewMockEntryRepository(gomock.NewController(t))
	svc := NewServerEntryService(repo, logger.Nop()).(*serverEntryService)
	svc.now = func() time.Time { return fixedNow }
	return repo, svc
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestServerEntries_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo, svc := newServerEntryFixture(t)
	ctx := context.Background()

	var stored models.Entry
	repo.EXPECT().
		Create(ctx, int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, entry models.Entry) error {
			stored = entry
			return nil
		})

	created, err := svc.Create(ctx, 1, models.EntryPayload{EncryptedTitle: "ct1", EncryptedContent: "ct2"})

	require.NoError(t, err)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)

	want := models.FormatTime(fixedNow)
	assert.Equal(t, want, created.DateCreated)
	assert.Equal(t, want, created.DateModified)
	assert.Equal(t, created, stored)
}

func TestServerEntries_CreateRequiresCiphertext(t *testing.T) {
	// No repository expectations: incomplete payloads never reach the store.
	_, svc := newServerEntryFixture(t)

	for name, payload := range map[string]models.EntryPayload{
		"missing title":   {EncryptedContent: "ct"},
		"missing content": {EncryptedTitle: "ct"},
		"missing both":    {},
	} {
		_, err := svc.Create(context.Background(), 1, payload)
		assert.ErrorIs(t, err, ErrMissingEncryptedFields, name)
	}
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestServerEntries_UpdateBumpsDateModified(t *testing.T) {
	repo, svc := newServerEntryFixture(t)
	ctx := context.Background()
	payload := models.EntryPayload{EncryptedTitle: "ct1", EncryptedContent: "ct2"}

	repo.EXPECT().Update(ctx, int64(1), "entry-7", payload, fixedNow).Return(nil)

	updated, err := svc.Update(ctx, 1, "entry-7", payload)

	require.NoError(t, err)
	assert.Equal(t, "entry-7", updated.ID)
	assert.Equal(t, models.FormatTime(fixedNow), updated.DateModified)
}

func TestServerEntries_UpdateRequiresCiphertext(t *testing.T) {
	_, svc := newServerEntryFixture(t)

	_, err := svc.Update(context.Background(), 1, "entry-7", models.EntryPayload{EncryptedTitle: "ct"})

	assert.ErrorIs(t, err, ErrMissingEncryptedFields)
}

func TestServerEntries_UpdateNotOwned(t *testing.T) {
	repo, svc := newServerEntryFixture(t)
	ctx := context.Background()
	payload := models.EntryPayload{EncryptedTitle: "ct1", EncryptedContent: "ct2"}

	repo.EXPECT().Update(ctx, int64(2), "entry-7", payload, fixedNow).Return(store.ErrEntryNotOwned)

	_, err := svc.Update(ctx, 2, "entry-7", payload)

	assert.ErrorIs(t, err, store.ErrEntryNotOwned)
}

// ── Delete and List ──────────────────────────────────────────────────────────

func TestServerEntries_DeletePassesThrough(t *testing.T) {
	repo, svc := newServerEntryFixture(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, int64(1), "entry-7").Return(nil)
	require.NoError(t, svc.Delete(ctx, 1, "entry-7"))

	repo.EXPECT().Delete(ctx, int64(1), "missing").Return(store.ErrEntryNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1, "missing"), store.ErrEntryNotFound)
}

func TestServerEntries_ListPassesThrough(t *testing.T) {
	repo, svc := newServerEntryFixture(t)
	ctx := context.Background()

	want := []models.Entry{{ID: "b"}, {ID: "a"}}
	repo.EXPECT().ListByUser(ctx, int64(1)).Return(want, nil)

	got, err := svc.List(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

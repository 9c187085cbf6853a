package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/models"
)

// ── Auth middleware ──────────────────────────────────────────────────────────

func TestEntries_RequireAuth(t *testing.T) {
	// No repository expectations: unauthenticated requests stop at the
	// middleware.
	f := newHandlerFixture(t)

	for name, header := range map[string]string{
		"no header":    "",
		"wrong scheme": "Basic dXNlcjpwdw==",
		"empty token":  "Bearer ",
		"garbage":      "Bearer not-a-token",
	} {
		resp, _ := doRequest(t, f, http.MethodGet, "/api/entries", header, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestListEntries(t *testing.T) {
	f := newHandlerFixture(t)

	serverEntries := []models.Entry{
		{ID: "b", EncryptedTitle: "ct-b", EncryptedContent: "ct-b2", DateCreated: "2026-08-20 08:00:00", DateModified: "2026-08-21 09:00:00"},
		{ID: "a", EncryptedTitle: "ct-a", EncryptedContent: "ct-a2", DateCreated: "2026-08-19 08:00:00", DateModified: "2026-08-20 09:00:00"},
	}
	f.entries.EXPECT().ListByUser(gomock.Any(), int64(3)).Return(serverEntries, nil)

	resp, body := doRequest(t, f, http.MethodGet, "/api/entries", bearer(t, 3), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got []models.Entry
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, serverEntries, got)
}

func TestListEntries_EmptyIsArray(t *testing.T) {
	f := newHandlerFixture(t)

	f.entries.EXPECT().ListByUser(gomock.Any(), int64(3)).Return(nil, nil)

	resp, body := doRequest(t, f, http.MethodGet, "/api/entries", bearer(t, 3), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateEntry(t *testing.T) {
	f := newHandlerFixture(t)

	var stored models.Entry
	f.entries.EXPECT().
		Create(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, entry models.Entry) error {
			stored = entry
			return nil
		})

	resp, body := doRequest(t, f, http.MethodPost, "/api/entries", bearer(t, 3),
		models.EntryPayload{EncryptedTitle: "ct1", EncryptedContent: "ct2"})

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, "Entry created successfully.", msg.Message)
	assert.Equal(t, stored.ID, msg.ID)
	assert.Equal(t, stored.DateModified, msg.DateModified)
}

func TestCreateEntry_MissingFields(t *testing.T) {
	f := newHandlerFixture(t)

	resp, body := doRequest(t, f, http.MethodPost, "/api/entries", bearer(t, 3),
		models.EntryPayload{EncryptedTitle: "ct1"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Missing encrypted title or content", errResp.Error)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdateEntry(t *testing.T) {
	f := newHandlerFixture(t)

	f.entries.EXPECT().
		Update(gomock.Any(), int64(3), "entry-7", models.EntryPayload{EncryptedTitle: "ct1", EncryptedContent: "ct2"}, gomock.Any()).
		Return(nil)

	resp, body := doRequest(t, f, http.MethodPut, "/api/entries/entry-7", bearer(t, 3),
		models.EntryPayload{EncryptedTitle: "ct1", EncryptedContent: "ct2"})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, "Entry updated successfully.", msg.Message)
	assert.Equal(t, "entry-7", msg.ID)
	assert.NotEmpty(t, msg.DateModified)
}

func TestUpdateEntry_NotOwned(t *testing.T) {
	f := newHandlerFixture(t)

	f.entries.EXPECT().
		Update(gomock.Any(), int64(2), "entry-7", gomock.Any(), gomock.Any()).
		Return(store.ErrEntryNotOwned)

	resp, body := doRequest(t, f, http.MethodPut, "/api/entries/entry-7", bearer(t, 2),
		models.EntryPayload{EncryptedTitle: "ct1", EncryptedContent: "ct2"})

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Unauthorized access", errResp.Error)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDeleteEntry(t *testing.T) {
	f := newHandlerFixture(t)

	f.entries.EXPECT().Delete(gomock.Any(), int64(3), "entry-7").Return(nil)

	resp, body := doRequest(t, f, http.MethodDelete, "/api/entries/entry-7", bearer(t, 3), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, "Entry deleted successfully.", msg.Message)
}

func TestDeleteEntry_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.entries.EXPECT().Delete(gomock.Any(), int64(3), "missing").Return(store.ErrEntryNotFound)

	resp, body := doRequest(t, f, http.MethodDelete, "/api/entries/missing", bearer(t, 3), nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Entry not found", errResp.Error)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/service"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/internal/utils"
	"github.com/dsmirnov/cryptodiary/models"
)

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrMissingUserID).Send()
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.Entries.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing entries failed")
		writeError(w, "Database error while listing entries.", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	utils.WriteJSON(w, entries, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrMissingUserID).Send()
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var payload models.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Entries.Create(ctx, userID, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingEncryptedFields):
			writeError(w, "Missing encrypted title or content", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("creating entry failed")
			writeError(w, "Database error while creating entry.", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{ //nolint:errcheck
		Message:      "Entry created successfully.",
		ID:           created.ID,
		DateModified: created.DateModified,
	}, http.StatusCreated)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrMissingUserID).Send()
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var payload models.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.Entries.Update(ctx, userID, chi.URLParam(r, "id"), payload)
	if err != nil {
		h.writeEntryError(w, r, err, "Database error while updating entry.")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{ //nolint:errcheck
		Message:      "Entry updated successfully.",
		ID:           updated.ID,
		DateModified: updated.DateModified,
	}, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrMissingUserID).Send()
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.Entries.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		h.writeEntryError(w, r, err, "Database error while deleting entry.")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Entry deleted successfully."}, http.StatusOK) //nolint:errcheck
}

// writeEntryError maps the ownership and existence errors shared by update
// and delete: unknown id is 404, someone else's entry is 403.
func (h *Handler) writeEntryError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrMissingEncryptedFields):
		writeError(w, "Missing encrypted title or content", http.StatusBadRequest)
	case errors.Is(err, store.ErrEntryNotFound):
		writeError(w, "Entry not found", http.StatusNotFound)
	case errors.Is(err, store.ErrEntryNotOwned):
		writeError(w, "Unauthorized access", http.StatusForbidden)
	default:
		log.Err(err).Msg("entry operation failed")
		writeError(w, fallback, http.StatusInternalServerError)
	}
}

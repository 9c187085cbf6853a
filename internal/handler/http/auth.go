package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/service"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/internal/utils"
	"github.com/dsmirnov/cryptodiary/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, token, err := h.services.Auth.Register(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid registration data")
			writeError(w, "Email and password are required.", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			writeError(w, "Email address already registered.", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.MessageResponse{Message: "Registration successful."}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	found, token, err := h.services.Auth.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email or password")
			writeError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", found.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.MessageResponse{Message: "Login successful."}, http.StatusOK) //nolint:errcheck
}

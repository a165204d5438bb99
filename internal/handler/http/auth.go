package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/internal/service"
	"github.com/MKhiriev/teacher-dashboard/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("empty credentials provided")
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("username", creds.Username).Msg("credential check failed")
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeError(w, "Login failed", http.StatusInternalServerError)
			return
		}
		writeError(w, messageFromError(err, "Login failed"), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, "Login failed", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, models.AuthResponse{
		Token: token.SignedString,
		User:  user,
	}, "Login successful", http.StatusOK)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"clefmusic-api/internal/middleware"
	"clefmusic-api/internal/models"
	"clefmusic-api/internal/services"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	sessions *services.SessionService
	logger   zerolog.Logger
}

func NewAuthHandler(sessions *services.SessionService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		logger:   logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.sessions.SignUp(&req)
	if err != nil {
		h.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.sessions.SignIn(&req)
	if err != nil {
		h.logger.Warn().Str("email", req.Email).Msg("Login failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "Not authenticated")
		return
	}

	if err := h.sessions.SignOut(sessionID); err != nil {
		h.logger.Error().Err(err).Msg("Logout failed")
		respondWithError(w, http.StatusInternalServerError, "logout_failed", "Failed to sign out")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "Not authenticated")
		return
	}

	session, err := h.sessions.Current(sessionID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}

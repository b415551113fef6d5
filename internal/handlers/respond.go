package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"clefmusic-api/internal/services"
)

func respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithServiceError maps the service error taxonomy to HTTP codes.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrEmailReserved):
		respondWithError(w, http.StatusBadRequest, "email_reserved", err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		respondWithError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, services.ErrNoSession):
		respondWithError(w, http.StatusUnauthorized, "no_session", err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		respondWithError(w, http.StatusConflict, "invalid_transition", err.Error())
	default:
		respondWithError(w, http.StatusBadRequest, "request_failed", err.Error())
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"clefmusic-api/internal/middleware"
	"clefmusic-api/internal/models"
	"clefmusic-api/internal/services"

	"github.com/rs/zerolog"
)

type AccountHandler struct {
	accounts *services.AccountService
	logger   zerolog.Logger
}

func NewAccountHandler(accounts *services.AccountService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "Not authenticated")
		return
	}

	account, err := h.accounts.GetByID(accountID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "Not authenticated")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	account, err := h.accounts.UpdateProfile(accountID, &req)
	if err != nil {
		h.logger.Warn().Err(err).Str("account_id", accountID).Msg("Profile update failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, account)
}

// ListAccounts is the admin listing of every registered account.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.List()
	if err != nil {
		h.logger.Error().Err(err).Msg("Listing accounts failed")
		respondWithError(w, http.StatusInternalServerError, "list_failed", "Failed to list accounts")
		return
	}

	respondWithJSON(w, http.StatusOK, accounts)
}

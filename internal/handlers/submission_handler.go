package handlers

import (
	"encoding/json"
	"net/http"

	"clefmusic-api/internal/models"
	"clefmusic-api/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type SubmissionHandler struct {
	submissions *services.SubmissionService
	logger      zerolog.Logger
}

func NewSubmissionHandler(submissions *services.SubmissionService, logger zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissions: submissions,
		logger:      logger,
	}
}

func (h *SubmissionHandler) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	var form models.ServiceRequestForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	req, err := h.submissions.CreateServiceRequest(&form)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, req)
}

func (h *SubmissionHandler) ListServiceRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.submissions.ListServiceRequests()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "list_failed", "Failed to list service requests")
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

func (h *SubmissionHandler) UpdateServiceRequestStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	updated, err := h.submissions.UpdateServiceRequestStatus(id, req.Status)
	if err != nil {
		h.logger.Warn().Err(err).Str("request_id", id).Msg("Service request status update failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *SubmissionHandler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var form models.ContactMessageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	msg, err := h.submissions.CreateContactMessage(&form)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, msg)
}

func (h *SubmissionHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.submissions.ListContactMessages()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "list_failed", "Failed to list contact messages")
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

func (h *SubmissionHandler) UpdateContactMessageStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	updated, err := h.submissions.UpdateContactMessageStatus(id, req.Status)
	if err != nil {
		h.logger.Warn().Err(err).Str("message_id", id).Msg("Contact message status update failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *SubmissionHandler) CreateBrochureRequest(w http.ResponseWriter, r *http.Request) {
	var form models.BrochureRequestForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	req, err := h.submissions.CreateBrochureRequest(&form)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, req)
}

func (h *SubmissionHandler) ListBrochureRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.submissions.ListBrochureRequests()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "list_failed", "Failed to list brochure requests")
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

func (h *SubmissionHandler) UpdateBrochureRequestStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	updated, err := h.submissions.UpdateBrochureRequestStatus(id, req.Status)
	if err != nil {
		h.logger.Warn().Err(err).Str("request_id", id).Msg("Brochure request status update failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

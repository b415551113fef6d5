package handlers

import (
	"net/http"
	"strconv"

	"clefmusic-api/internal/services"

	"github.com/rs/zerolog"
)

const defaultRecentEntries = 5

type DashboardHandler struct {
	dashboard *services.DashboardService
	logger    zerolog.Logger
}

func NewDashboardHandler(dashboard *services.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	recent := defaultRecentEntries
	if v := r.URL.Query().Get("recent"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			recent = n
		}
	}

	summary, err := h.dashboard.Summary(recent)
	if err != nil {
		h.logger.Error().Err(err).Msg("Dashboard aggregation failed")
		respondWithError(w, http.StatusInternalServerError, "dashboard_failed", "Failed to build dashboard")
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

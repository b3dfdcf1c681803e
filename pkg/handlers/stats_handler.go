package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/services"
)

// StatsHandler serves dashboard and analytics aggregates.
type StatsHandler struct {
	stats  services.StatsService
	logger *zap.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(stats services.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger,
	}
}

// RegisterRoutes registers the stats handler's routes on the given mux.
func (h *StatsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/stats", h.Stats)
	mux.HandleFunc("GET /api/analytics", h.Analytics)
}

// Stats handles GET /api/stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "stats_failed", "Failed to fetch stats"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, stats); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Analytics handles GET /api/analytics
func (h *StatsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.stats.Analytics(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute analytics", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "analytics_failed", "Failed to fetch analytics"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, analytics); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

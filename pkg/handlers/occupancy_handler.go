package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/services"
)

// OccupancyHandler serves the master code registry.
type OccupancyHandler struct {
	master services.OccupancyMasterService
	logger *zap.Logger
}

// NewOccupancyHandler creates a new occupancy handler.
func NewOccupancyHandler(master services.OccupancyMasterService, logger *zap.Logger) *OccupancyHandler {
	return &OccupancyHandler{
		master: master,
		logger: logger,
	}
}

// RegisterRoutes registers the occupancy handler's routes on the given mux.
func (h *OccupancyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/occupancy-codes", h.ListCodes)
	mux.HandleFunc("POST /api/reload-occupancy-master", h.Reload)
}

// ListCodes handles GET /api/occupancy-codes
func (h *OccupancyHandler) ListCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.master.ListCodes(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch occupancy codes", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "codes_failed", "Failed to fetch occupancy codes"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if codes == nil {
		codes = make([]*models.OccupancyCode, 0)
	}

	if err := WriteJSON(w, http.StatusOK, codes); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Reload handles POST /api/reload-occupancy-master
func (h *OccupancyHandler) Reload(w http.ResponseWriter, r *http.Request) {
	result, err := h.master.Reload(r.Context())
	if err != nil {
		h.logger.Error("Failed to reload occupancy master", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "reload_failed", "Failed to reload occupancy master list"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

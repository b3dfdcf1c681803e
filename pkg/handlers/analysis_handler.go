package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/services"
)

// AnalysisHandler handles classification HTTP requests.
type AnalysisHandler struct {
	classification services.ClassificationService
	logger         *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(classification services.ClassificationService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		classification: classification,
		logger:         logger,
	}
}

// RegisterRoutes registers the analysis handler's routes on the given mux.
func (h *AnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", h.Analyze)
}

type analyzeRequest struct {
	BusinessDescription string `json:"businessDescription"`
}

type suggestionResponse struct {
	Occupancy  string            `json:"occupancy"`
	Reason     string            `json:"reason"`
	Confidence models.Confidence `json:"confidence"`
}

type analyzeResponse struct {
	ID                   uuid.UUID            `json:"id"`
	SuggestedOccupancies []suggestionResponse `json:"suggested_occupancies"`
	OverallReasoning     string               `json:"overall_reasoning"`
	ProcessingMs         int64                `json:"processingMs"`
	CreatedAt            time.Time            `json:"createdAt"`
}

// Analyze handles POST /api/analyze
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if strings.TrimSpace(req.BusinessDescription) == "" {
		if err := ValidationErrorResponse(w, "businessDescription is required", "businessDescription"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	analysis, err := h.classification.Classify(r.Context(), req.BusinessDescription)
	if err != nil {
		h.logger.Error("Failed to analyze business description", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "analysis_failed", "Failed to analyze business description"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, analyzeResponse{
		ID:                   analysis.ID,
		SuggestedOccupancies: presentSuggestions(analysis.Suggestions),
		OverallReasoning:     analysis.OverallReasoning,
		ProcessingMs:         analysis.ProcessingMs,
		CreatedAt:            analysis.CreatedAt,
	}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// presentSuggestions maps stored suggestions to the response shape. A
// confidence the model never set defaults to medium here, not in storage.
func presentSuggestions(suggestions []models.Suggestion) []suggestionResponse {
	out := make([]suggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		confidence := s.Confidence
		if !confidence.IsValid() {
			confidence = models.ConfidenceMedium
		}
		out = append(out, suggestionResponse{
			Occupancy:  s.Occupancy,
			Reason:     s.Reason,
			Confidence: confidence,
		})
	}
	return out
}

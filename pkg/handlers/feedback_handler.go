package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/services"
)

const defaultRecentCorrections = 5

// FeedbackHandler handles feedback submission and the corrections sidebar.
type FeedbackHandler struct {
	feedback services.FeedbackService
	master   services.OccupancyMasterService
	logger   *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedback services.FeedbackService, master services.OccupancyMasterService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
		master:   master,
		logger:   logger,
	}
}

// RegisterRoutes registers the feedback handler's routes on the given mux.
func (h *FeedbackHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/feedback", h.SubmitFeedback)
	mux.HandleFunc("GET /api/recent-corrections", h.RecentCorrections)
}

type feedbackRequest struct {
	AnalysisID       string `json:"analysisId"`
	SuggestionIndex  int    `json:"suggestionIndex"`
	OccupancyCode    string `json:"occupancyCode"`
	FeedbackType     string `json:"feedbackType"`
	CorrectionCode   string `json:"correctionCode"`
	CorrectionReason string `json:"correctionReason"`
}

type feedbackResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	FeedbackID uuid.UUID `json:"feedbackId"`
}

// SubmitFeedback handles POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	fields := h.validate(&req)
	if len(fields) > 0 {
		if err := ValidationErrorResponse(w, "Invalid feedback submission", fields...); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	analysisID, _ := uuid.Parse(req.AnalysisID)

	// Correction codes, when supplied, must come from the master list.
	// Absence is tolerated: the row is stored but never conditions prompts.
	if req.CorrectionCode != "" {
		valid, err := h.master.IsValid(r.Context(), req.CorrectionCode)
		if err != nil {
			h.logger.Error("Failed to validate correction code", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "feedback_failed", "Failed to record feedback"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		if !valid {
			if err := ValidationErrorResponse(w, "correctionCode is not in the master occupancy list", "correctionCode"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
	}

	result, err := h.feedback.RecordFeedback(r.Context(), &models.Feedback{
		AnalysisID:       analysisID,
		SuggestionIndex:  req.SuggestionIndex,
		OccupancyCode:    req.OccupancyCode,
		FeedbackType:     models.FeedbackType(req.FeedbackType),
		CorrectionCode:   req.CorrectionCode,
		CorrectionReason: req.CorrectionReason,
	})
	if err != nil {
		h.logger.Error("Failed to record feedback", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "feedback_failed", "Failed to record feedback"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, feedbackResponse{
		Success:    true,
		Message:    result.Acknowledgment,
		FeedbackID: result.Feedback.ID,
	}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *FeedbackHandler) validate(req *feedbackRequest) []string {
	var fields []string
	if _, err := uuid.Parse(req.AnalysisID); err != nil {
		fields = append(fields, "analysisId")
	}
	if req.SuggestionIndex < 0 {
		fields = append(fields, "suggestionIndex")
	}
	if strings.TrimSpace(req.OccupancyCode) == "" {
		fields = append(fields, "occupancyCode")
	}
	if !models.FeedbackType(req.FeedbackType).IsValid() {
		fields = append(fields, "feedbackType")
	}
	return fields
}

// RecentCorrections handles GET /api/recent-corrections
func (h *FeedbackHandler) RecentCorrections(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentCorrections
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			if err := ValidationErrorResponse(w, "limit must be a positive integer", "limit"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		limit = parsed
	}

	corrections, err := h.feedback.RecentCorrections(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to fetch recent corrections", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "corrections_failed", "Failed to fetch recent corrections"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if corrections == nil {
		corrections = make([]*models.Feedback, 0)
	}

	if err := WriteJSON(w, http.StatusOK, corrections); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/llm"
	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/prompts"
	"github.com/suraksha-labs/occupancy-engine/pkg/repositories"
)

const (
	// acknowledgmentTemperature allows some conversational variation.
	acknowledgmentTemperature = 0.7
	// positiveAcknowledgment confirms accepted suggestions without a model
	// call.
	positiveAcknowledgment = "Feedback recorded successfully"
	// fallbackAcknowledgment is returned when acknowledgment generation
	// fails. The stored correction is unaffected.
	fallbackAcknowledgment = "Thank you for the correction. I have logged that for this type of description, the correct occupancy is noted. This feedback helps improve the system."
)

// FeedbackResult is what a recorded feedback submission returns to the
// caller.
type FeedbackResult struct {
	Feedback       *models.Feedback
	Acknowledgment string
}

// FeedbackService persists agent feedback and produces an acknowledgment.
// Persistence always happens first: a correction is never lost because
// acknowledgment generation failed.
type FeedbackService interface {
	RecordFeedback(ctx context.Context, feedback *models.Feedback) (*FeedbackResult, error)
	RecentCorrections(ctx context.Context, limit int) ([]*models.Feedback, error)
}

type feedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	analysisRepo repositories.AnalysisRepository
	client       llm.LLMClient
	logger       *zap.Logger
}

// NewFeedbackService creates a FeedbackService. client is the smaller
// acknowledgment model, not the classification one.
func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	analysisRepo repositories.AnalysisRepository,
	client llm.LLMClient,
	logger *zap.Logger,
) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		analysisRepo: analysisRepo,
		client:       client,
		logger:       logger.Named("feedback"),
	}
}

var _ FeedbackService = (*feedbackService)(nil)

func (s *feedbackService) RecordFeedback(ctx context.Context, feedback *models.Feedback) (*FeedbackResult, error) {
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("persisting feedback: %w", err)
	}

	acknowledgment := positiveAcknowledgment
	if feedback.FeedbackType == models.FeedbackNegative && feedback.CorrectionCode != "" {
		acknowledgment = s.generateAcknowledgment(ctx, feedback)
	}

	s.logger.Info("feedback recorded",
		zap.String("feedback_id", feedback.ID.String()),
		zap.String("analysis_id", feedback.AnalysisID.String()),
		zap.String("type", string(feedback.FeedbackType)))
	return &FeedbackResult{Feedback: feedback, Acknowledgment: acknowledgment}, nil
}

func (s *feedbackService) RecentCorrections(ctx context.Context, limit int) ([]*models.Feedback, error) {
	corrections, err := s.feedbackRepo.GetRecentCorrections(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading recent corrections: %w", err)
	}
	return corrections, nil
}

// generateAcknowledgment asks the acknowledgment model for a short
// conversational response. Any failure falls back to a fixed string.
func (s *feedbackService) generateAcknowledgment(ctx context.Context, feedback *models.Feedback) string {
	analysis, err := s.analysisRepo.GetByID(ctx, feedback.AnalysisID)
	if err != nil {
		s.logger.Warn("looking up analysis for acknowledgment failed", zap.Error(err))
		return fallbackAcknowledgment
	}
	if analysis == nil {
		return fallbackAcknowledgment
	}

	prompt := prompts.BuildAcknowledgmentPrompt(
		analysis.BusinessDescription,
		feedback.OccupancyCode,
		feedback.CorrectionCode,
		feedback.CorrectionReason,
	)

	result, err := s.client.GenerateResponse(ctx, prompt, "", acknowledgmentTemperature, false)
	if err != nil {
		s.logger.Warn("acknowledgment generation failed", zap.Error(err))
		return fallbackAcknowledgment
	}
	if result.Content == "" {
		return fallbackAcknowledgment
	}
	return result.Content
}

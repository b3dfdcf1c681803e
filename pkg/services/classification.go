package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/jsonutil"
	"github.com/suraksha-labs/occupancy-engine/pkg/llm"
	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/prompts"
	"github.com/suraksha-labs/occupancy-engine/pkg/repositories"
)

const (
	// maxGuidingExamples limits retrieved examples to avoid over-anchoring
	// the model on historical data.
	maxGuidingExamples = 3
	// maxPromptCorrections is how many recent corrections condition each
	// classification prompt.
	maxPromptCorrections = 10
	// classificationTemperature keeps the model close to deterministic for
	// a matching task.
	classificationTemperature = 0.2
	// fallbackReasoning stands in when the model omits overall_reasoning.
	fallbackReasoning = "Analysis completed"
)

// rawSuggestion mirrors one entry of the model's suggested_occupancies
// array. Confidence is kept raw because models occasionally emit numbers
// or booleans there.
type rawSuggestion struct {
	Occupancy  string          `json:"occupancy"`
	Reason     string          `json:"reason"`
	Confidence json.RawMessage `json:"confidence"`
}

// classificationResponse is the schema the model is instructed to return.
// SuggestedOccupancies is a pointer so a missing key can be told apart
// from an explicit empty array; missing means the response is malformed.
type classificationResponse struct {
	SuggestedOccupancies *[]rawSuggestion `json:"suggested_occupancies"`
	OverallReasoning     string           `json:"overall_reasoning"`
}

// ClassificationService runs the full classification pipeline for one
// business description and persists the result.
type ClassificationService interface {
	Classify(ctx context.Context, description string) (*models.Analysis, error)
}

type classificationService struct {
	master       OccupancyMasterService
	retrieval    RetrievalService
	flexibility  FlexibilityService
	analysisRepo repositories.AnalysisRepository
	feedbackRepo repositories.FeedbackRepository
	client       llm.LLMClient
	logger       *zap.Logger
}

// NewClassificationService creates a ClassificationService.
func NewClassificationService(
	master OccupancyMasterService,
	retrieval RetrievalService,
	flexibility FlexibilityService,
	analysisRepo repositories.AnalysisRepository,
	feedbackRepo repositories.FeedbackRepository,
	client llm.LLMClient,
	logger *zap.Logger,
) ClassificationService {
	return &classificationService{
		master:       master,
		retrieval:    retrieval,
		flexibility:  flexibility,
		analysisRepo: analysisRepo,
		feedbackRepo: feedbackRepo,
		client:       client,
		logger:       logger.Named("classification"),
	}
}

var _ ClassificationService = (*classificationService)(nil)

func (s *classificationService) Classify(ctx context.Context, description string) (*models.Analysis, error) {
	start := time.Now()

	// An empty master list is degenerate but not fatal; every suggestion
	// fails validation and the analysis comes back empty.
	masterList, err := s.master.Codes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading master list: %w", err)
	}

	examples := s.retrieval.RetrieveExamples(description, maxGuidingExamples)

	corrections, err := s.feedbackRepo.GetRecentCorrections(ctx, maxPromptCorrections)
	if err != nil {
		return nil, fmt.Errorf("loading recent corrections: %w", err)
	}

	guardAdditions := s.flexibility.BuildPromptAdditions(description, examples)

	systemPrompt := prompts.BuildClassificationSystemPrompt(masterList, examples, corrections, guardAdditions)
	userPrompt := prompts.BuildClassificationUserPrompt(description)

	result, err := s.client.GenerateResponse(ctx, userPrompt, systemPrompt, classificationTemperature, true)
	if err != nil {
		return nil, fmt.Errorf("classification model call: %w", err)
	}

	parsed, err := llm.ParseJSONResponse[classificationResponse](result.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing classification response: %w", err)
	}
	if parsed.SuggestedOccupancies == nil {
		return nil, fmt.Errorf("classification response missing suggested_occupancies")
	}

	suggestions := s.validateSuggestions(ctx, *parsed.SuggestedOccupancies)

	report := s.flexibility.AssessFlexibility(description, examples, suggestions)
	if !report.IsFlexible {
		s.logger.Warn("flexibility concerns in classification",
			zap.Strings("concerns", report.Concerns),
			zap.Strings("recommendations", report.Recommendations))
	}

	reasoning := parsed.OverallReasoning
	if reasoning == "" {
		reasoning = fallbackReasoning
	}

	analysis := &models.Analysis{
		BusinessDescription: description,
		Suggestions:         suggestions,
		OverallReasoning:    reasoning,
		ProcessingMs:        time.Since(start).Milliseconds(),
	}
	if err := s.analysisRepo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("persisting analysis: %w", err)
	}

	s.logger.Info("classification completed",
		zap.String("analysis_id", analysis.ID.String()),
		zap.Int("suggestions", len(suggestions)),
		zap.Int64("processing_ms", analysis.ProcessingMs),
		zap.Int("total_tokens", result.TotalTokens))
	return analysis, nil
}

// validateSuggestions drops any suggestion whose code is not an exact
// master-list match. The system never surfaces a code outside the
// authoritative list regardless of what the model returns.
func (s *classificationService) validateSuggestions(ctx context.Context, raw []rawSuggestion) []models.Suggestion {
	suggestions := make([]models.Suggestion, 0, len(raw))
	for _, item := range raw {
		valid, err := s.master.IsValid(ctx, item.Occupancy)
		if err != nil {
			s.logger.Error("master list lookup failed, dropping suggestion",
				zap.String("occupancy", item.Occupancy), zap.Error(err))
			continue
		}
		if !valid {
			s.logger.Debug("dropping suggestion outside master list",
				zap.String("occupancy", item.Occupancy))
			continue
		}

		confidence := models.Confidence(jsonutil.FlexibleStringValue(item.Confidence))
		if !confidence.IsValid() {
			confidence = ""
		}
		suggestions = append(suggestions, models.Suggestion{
			Occupancy:  item.Occupancy,
			Reason:     item.Reason,
			Confidence: confidence,
		})
	}
	return suggestions
}

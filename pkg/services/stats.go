package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/repositories"
)

const topCorrectionsLimit = 5

// Stats is the dashboard summary shown next to the analyzer.
type Stats struct {
	AnalysesToday int    `json:"analysesToday"`
	AccuracyRate  int    `json:"accuracyRate"`
	AvgProcessing string `json:"avgProcessing"`
}

// AnalyticsOverview is the headline block of the analytics page.
type AnalyticsOverview struct {
	TotalAnalyses     int    `json:"totalAnalyses"`
	AccuracyRate      int    `json:"accuracyRate"`
	AvgProcessingTime string `json:"avgProcessingTime"`
	TotalCorrections  int    `json:"totalCorrections"`
}

// ConfidenceBreakdown counts suggestions by confidence level.
type ConfidenceBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// FeedbackTrends summarizes the feedback log.
type FeedbackTrends struct {
	Positive       int `json:"positive"`
	Negative       int `json:"negative"`
	CorrectionRate int `json:"correctionRate"`
}

// RecentMetrics compares recent activity windows. Improvement is the
// last-7-day accuracy minus the accuracy of the 7 days before that.
type RecentMetrics struct {
	Last7Days   int `json:"last7Days"`
	Last30Days  int `json:"last30Days"`
	Improvement int `json:"improvement"`
}

// Analytics is the full analytics payload.
type Analytics struct {
	Overview            AnalyticsOverview             `json:"overview"`
	ConfidenceBreakdown ConfidenceBreakdown           `json:"confidenceBreakdown"`
	FeedbackTrends      FeedbackTrends                `json:"feedbackTrends"`
	RecentMetrics       RecentMetrics                 `json:"recentMetrics"`
	TopCorrections      []repositories.CorrectionCount `json:"topCorrections"`
}

// StatsService aggregates analysis and feedback history for dashboards.
type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
	Analytics(ctx context.Context) (*Analytics, error)
}

type statsService struct {
	analysisRepo repositories.AnalysisRepository
	feedbackRepo repositories.FeedbackRepository
	logger       *zap.Logger
}

// NewStatsService creates a StatsService.
func NewStatsService(analysisRepo repositories.AnalysisRepository, feedbackRepo repositories.FeedbackRepository, logger *zap.Logger) StatsService {
	return &statsService{
		analysisRepo: analysisRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger.Named("stats"),
	}
}

var _ StatsService = (*statsService)(nil)

func (s *statsService) Stats(ctx context.Context) (*Stats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	analysesToday, err := s.analysisRepo.CountSince(ctx, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("counting today's analyses: %w", err)
	}

	positive, negative, err := s.feedbackRepo.CountByTypeSince(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("counting feedback: %w", err)
	}

	avgProcessing, err := s.avgProcessing(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		AnalysesToday: analysesToday,
		AccuracyRate:  accuracyPercent(positive, negative),
		AvgProcessing: avgProcessing,
	}, nil
}

func (s *statsService) Analytics(ctx context.Context) (*Analytics, error) {
	now := time.Now()

	totalAnalyses, err := s.analysisRepo.CountSince(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("counting analyses: %w", err)
	}
	last7, err := s.analysisRepo.CountSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("counting recent analyses: %w", err)
	}
	last30, err := s.analysisRepo.CountSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, fmt.Errorf("counting recent analyses: %w", err)
	}

	positive, negative, err := s.feedbackRepo.CountByTypeSince(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("counting feedback: %w", err)
	}

	pos7, neg7, err := s.feedbackRepo.CountByTypeSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("counting recent feedback: %w", err)
	}
	pos14, neg14, err := s.feedbackRepo.CountByTypeSince(ctx, now.AddDate(0, 0, -14))
	if err != nil {
		return nil, fmt.Errorf("counting recent feedback: %w", err)
	}

	confidence, err := s.analysisRepo.ConfidenceCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregating confidence counts: %w", err)
	}

	topCorrections, err := s.feedbackRepo.TopCorrections(ctx, topCorrectionsLimit)
	if err != nil {
		return nil, fmt.Errorf("loading top corrections: %w", err)
	}

	avgProcessing, err := s.avgProcessing(ctx)
	if err != nil {
		return nil, err
	}

	currentAccuracy := accuracyPercent(pos7, neg7)
	priorAccuracy := accuracyPercent(pos14-pos7, neg14-neg7)

	return &Analytics{
		Overview: AnalyticsOverview{
			TotalAnalyses:     totalAnalyses,
			AccuracyRate:      accuracyPercent(positive, negative),
			AvgProcessingTime: avgProcessing,
			TotalCorrections:  negative,
		},
		ConfidenceBreakdown: ConfidenceBreakdown{
			High:   confidence[models.ConfidenceHigh],
			Medium: confidence[models.ConfidenceMedium],
			Low:    confidence[models.ConfidenceLow],
		},
		FeedbackTrends: FeedbackTrends{
			Positive:       positive,
			Negative:       negative,
			CorrectionRate: share(negative, positive+negative),
		},
		RecentMetrics: RecentMetrics{
			Last7Days:   last7,
			Last30Days:  last30,
			Improvement: currentAccuracy - priorAccuracy,
		},
		TopCorrections: topCorrections,
	}, nil
}

func (s *statsService) avgProcessing(ctx context.Context) (string, error) {
	avgMs, hasData, err := s.analysisRepo.AvgProcessingMs(ctx)
	if err != nil {
		return "", fmt.Errorf("averaging processing time: %w", err)
	}
	if !hasData {
		return "n/a", nil
	}
	return fmt.Sprintf("%.1fs", avgMs/1000), nil
}

func accuracyPercent(positive, negative int) int {
	return share(positive, positive+negative)
}

func share(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

package handlers

import (
	"context"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/services"
)

// Function-field service fakes for handler tests.

type fakeClassificationService struct {
	ClassifyFunc func(ctx context.Context, description string) (*models.Analysis, error)
}

func (f *fakeClassificationService) Classify(ctx context.Context, description string) (*models.Analysis, error) {
	return f.ClassifyFunc(ctx, description)
}

var _ services.ClassificationService = (*fakeClassificationService)(nil)

type fakeFeedbackService struct {
	RecordFeedbackFunc    func(ctx context.Context, feedback *models.Feedback) (*services.FeedbackResult, error)
	RecentCorrectionsFunc func(ctx context.Context, limit int) ([]*models.Feedback, error)
}

func (f *fakeFeedbackService) RecordFeedback(ctx context.Context, feedback *models.Feedback) (*services.FeedbackResult, error) {
	return f.RecordFeedbackFunc(ctx, feedback)
}

func (f *fakeFeedbackService) RecentCorrections(ctx context.Context, limit int) ([]*models.Feedback, error) {
	return f.RecentCorrectionsFunc(ctx, limit)
}

var _ services.FeedbackService = (*fakeFeedbackService)(nil)

type fakeMasterService struct {
	SeedFunc      func(ctx context.Context) error
	ReloadFunc    func(ctx context.Context) (*services.ReloadResult, error)
	CodesFunc     func(ctx context.Context) ([]string, error)
	ListCodesFunc func(ctx context.Context) ([]*models.OccupancyCode, error)
	IsValidFunc   func(ctx context.Context, code string) (bool, error)
}

func (f *fakeMasterService) Seed(ctx context.Context) error {
	return f.SeedFunc(ctx)
}

func (f *fakeMasterService) Reload(ctx context.Context) (*services.ReloadResult, error) {
	return f.ReloadFunc(ctx)
}

func (f *fakeMasterService) Codes(ctx context.Context) ([]string, error) {
	return f.CodesFunc(ctx)
}

func (f *fakeMasterService) ListCodes(ctx context.Context) ([]*models.OccupancyCode, error) {
	return f.ListCodesFunc(ctx)
}

func (f *fakeMasterService) IsValid(ctx context.Context, code string) (bool, error) {
	return f.IsValidFunc(ctx, code)
}

var _ services.OccupancyMasterService = (*fakeMasterService)(nil)

type fakeStatsService struct {
	StatsFunc     func(ctx context.Context) (*services.Stats, error)
	AnalyticsFunc func(ctx context.Context) (*services.Analytics, error)
}

func (f *fakeStatsService) Stats(ctx context.Context) (*services.Stats, error) {
	return f.StatsFunc(ctx)
}

func (f *fakeStatsService) Analytics(ctx context.Context) (*services.Analytics, error) {
	return f.AnalyticsFunc(ctx)
}

var _ services.StatsService = (*fakeStatsService)(nil)

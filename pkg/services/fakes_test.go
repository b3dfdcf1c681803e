package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suraksha-labs/occupancy-engine/pkg/apperrors"
	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeOccupancyCodeRepo struct {
	codes []*models.OccupancyCode
}

func newFakeOccupancyCodeRepo(codes ...string) *fakeOccupancyCodeRepo {
	repo := &fakeOccupancyCodeRepo{}
	for _, code := range codes {
		_ = repo.Create(context.Background(), &models.OccupancyCode{Code: code, Description: code})
	}
	return repo
}

func (r *fakeOccupancyCodeRepo) Create(_ context.Context, code *models.OccupancyCode) error {
	for _, existing := range r.codes {
		if existing.Code == code.Code {
			return apperrors.ErrConflict
		}
	}
	code.ID = uuid.New()
	code.CreatedAt = time.Now()
	stored := *code
	r.codes = append(r.codes, &stored)
	return nil
}

func (r *fakeOccupancyCodeRepo) GetAll(_ context.Context) ([]*models.OccupancyCode, error) {
	return append([]*models.OccupancyCode(nil), r.codes...), nil
}

func (r *fakeOccupancyCodeRepo) ListCodes(_ context.Context) ([]string, error) {
	codes := make([]string, 0, len(r.codes))
	for _, code := range r.codes {
		codes = append(codes, code.Code)
	}
	return codes, nil
}

func (r *fakeOccupancyCodeRepo) Exists(_ context.Context, code string) (bool, error) {
	for _, existing := range r.codes {
		if existing.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOccupancyCodeRepo) Count(_ context.Context) (int, error) {
	return len(r.codes), nil
}

var _ repositories.OccupancyCodeRepository = (*fakeOccupancyCodeRepo)(nil)

type fakeAnalysisRepo struct {
	analyses []*models.Analysis
}

func (r *fakeAnalysisRepo) Create(_ context.Context, analysis *models.Analysis) error {
	analysis.ID = uuid.New()
	analysis.CreatedAt = time.Now()
	stored := *analysis
	r.analyses = append(r.analyses, &stored)
	return nil
}

func (r *fakeAnalysisRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Analysis, error) {
	for _, analysis := range r.analyses {
		if analysis.ID == id {
			return analysis, nil
		}
	}
	return nil, nil
}

func (r *fakeAnalysisRepo) GetRecent(_ context.Context, limit int) ([]*models.Analysis, error) {
	recent := append([]*models.Analysis(nil), r.analyses...)
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (r *fakeAnalysisRepo) CountSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, analysis := range r.analyses {
		if !analysis.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *fakeAnalysisRepo) AvgProcessingMs(_ context.Context) (float64, bool, error) {
	if len(r.analyses) == 0 {
		return 0, false, nil
	}
	sum := int64(0)
	for _, analysis := range r.analyses {
		sum += analysis.ProcessingMs
	}
	return float64(sum) / float64(len(r.analyses)), true, nil
}

func (r *fakeAnalysisRepo) ConfidenceCounts(_ context.Context) (map[models.Confidence]int, error) {
	counts := make(map[models.Confidence]int)
	for _, analysis := range r.analyses {
		for _, suggestion := range analysis.Suggestions {
			confidence := suggestion.Confidence
			if !confidence.IsValid() {
				confidence = models.ConfidenceMedium
			}
			counts[confidence]++
		}
	}
	return counts, nil
}

var _ repositories.AnalysisRepository = (*fakeAnalysisRepo)(nil)

type fakeFeedbackRepo struct {
	rows []*models.Feedback
}

func (r *fakeFeedbackRepo) Create(_ context.Context, feedback *models.Feedback) error {
	feedback.ID = uuid.New()
	feedback.CreatedAt = time.Now()
	stored := *feedback
	r.rows = append(r.rows, &stored)
	return nil
}

func (r *fakeFeedbackRepo) GetByAnalysis(_ context.Context, analysisID uuid.UUID) ([]*models.Feedback, error) {
	var rows []*models.Feedback
	for _, row := range r.rows {
		if row.AnalysisID == analysisID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (r *fakeFeedbackRepo) GetRecentCorrections(_ context.Context, limit int) ([]*models.Feedback, error) {
	var corrections []*models.Feedback
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].FeedbackType == models.FeedbackNegative {
			corrections = append(corrections, r.rows[i])
		}
		if len(corrections) == limit {
			break
		}
	}
	return corrections, nil
}

func (r *fakeFeedbackRepo) CountByTypeSince(_ context.Context, since time.Time) (int, int, error) {
	positive, negative := 0, 0
	for _, row := range r.rows {
		if row.CreatedAt.Before(since) {
			continue
		}
		if row.FeedbackType == models.FeedbackPositive {
			positive++
		} else {
			negative++
		}
	}
	return positive, negative, nil
}

func (r *fakeFeedbackRepo) TopCorrections(_ context.Context, limit int) ([]repositories.CorrectionCount, error) {
	type pair struct{ wrong, correct string }
	counts := make(map[pair]int)
	var order []pair
	for _, row := range r.rows {
		if row.FeedbackType != models.FeedbackNegative || row.CorrectionCode == "" {
			continue
		}
		key := pair{row.OccupancyCode, row.CorrectionCode}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	results := make([]repositories.CorrectionCount, 0, len(order))
	for _, key := range order {
		results = append(results, repositories.CorrectionCount{
			OriginalCode:  key.wrong,
			CorrectedCode: key.correct,
			Frequency:     counts[key],
		})
	}
	for i := 0; i < len(results); i++ {
		for j := i + 1; j < len(results); j++ {
			if results[j].Frequency > results[i].Frequency {
				results[i], results[j] = results[j], results[i]
			}
		}
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

var _ repositories.FeedbackRepository = (*fakeFeedbackRepo)(nil)

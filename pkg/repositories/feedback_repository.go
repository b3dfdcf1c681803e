package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/suraksha-labs/occupancy-engine/pkg/database"
	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

// CorrectionCount is one (wrong code, corrected code) pair with its
// occurrence frequency in the correction log.
type CorrectionCount struct {
	OriginalCode  string `json:"originalCode"`
	CorrectedCode string `json:"correctedCode"`
	Frequency     int    `json:"frequency"`
}

// FeedbackRepository provides data access for the append-only feedback log.
// There is deliberately no update or delete path: corrections are permanent
// history.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByAnalysis(ctx context.Context, analysisID uuid.UUID) ([]*models.Feedback, error)
	// GetRecentCorrections returns negative feedback, most recent first.
	GetRecentCorrections(ctx context.Context, limit int) ([]*models.Feedback, error)
	// CountByTypeSince counts positive and negative rows created at or after
	// since. Pass the zero time for all-time counts.
	CountByTypeSince(ctx context.Context, since time.Time) (positive, negative int, err error)
	// TopCorrections groups corrections by (wrong, corrected) pair, most
	// frequent first.
	TopCorrections(ctx context.Context, limit int) ([]CorrectionCount, error)
}

type feedbackRepository struct {
	db *database.DB
}

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(db *database.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

var _ FeedbackRepository = (*feedbackRepository)(nil)

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (
			analysis_id, suggestion_index, occupancy_code,
			feedback_type, correction_code, correction_reason
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		feedback.AnalysisID,
		feedback.SuggestionIndex,
		feedback.OccupancyCode,
		string(feedback.FeedbackType),
		nullString(feedback.CorrectionCode),
		nullString(feedback.CorrectionReason),
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepository) GetByAnalysis(ctx context.Context, analysisID uuid.UUID) ([]*models.Feedback, error) {
	query := `
		SELECT id, analysis_id, suggestion_index, occupancy_code,
		       feedback_type, correction_code, correction_reason, created_at
		FROM feedback
		WHERE analysis_id = $1
		ORDER BY created_at`

	return r.queryFeedback(ctx, query, analysisID)
}

func (r *feedbackRepository) GetRecentCorrections(ctx context.Context, limit int) ([]*models.Feedback, error) {
	query := `
		SELECT id, analysis_id, suggestion_index, occupancy_code,
		       feedback_type, correction_code, correction_reason, created_at
		FROM feedback
		WHERE feedback_type = 'negative'
		ORDER BY created_at DESC
		LIMIT $1`

	return r.queryFeedback(ctx, query, limit)
}

func (r *feedbackRepository) CountByTypeSince(ctx context.Context, since time.Time) (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE feedback_type = 'positive'),
			COUNT(*) FILTER (WHERE feedback_type = 'negative')
		FROM feedback
		WHERE created_at >= $1`

	var positive, negative int
	if err := r.db.QueryRow(ctx, query, since).Scan(&positive, &negative); err != nil {
		return 0, 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return positive, negative, nil
}

func (r *feedbackRepository) TopCorrections(ctx context.Context, limit int) ([]CorrectionCount, error) {
	query := `
		SELECT occupancy_code, correction_code, COUNT(*)
		FROM feedback
		WHERE feedback_type = 'negative' AND correction_code IS NOT NULL
		GROUP BY occupancy_code, correction_code
		ORDER BY COUNT(*) DESC, occupancy_code
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top corrections: %w", err)
	}
	defer rows.Close()

	var corrections []CorrectionCount
	for rows.Next() {
		var c CorrectionCount
		if err := rows.Scan(&c.OriginalCode, &c.CorrectedCode, &c.Frequency); err != nil {
			return nil, fmt.Errorf("failed to scan correction count: %w", err)
		}
		corrections = append(corrections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top corrections: %w", err)
	}

	return corrections, nil
}

func (r *feedbackRepository) queryFeedback(ctx context.Context, query string, args ...any) ([]*models.Feedback, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var items []*models.Feedback
	for rows.Next() {
		var f models.Feedback
		var correctionCode, correctionReason *string
		err := rows.Scan(&f.ID, &f.AnalysisID, &f.SuggestionIndex, &f.OccupancyCode,
			&f.FeedbackType, &correctionCode, &correctionReason, &f.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		if correctionCode != nil {
			f.CorrectionCode = *correctionCode
		}
		if correctionReason != nil {
			f.CorrectionReason = *correctionReason
		}
		items = append(items, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback: %w", err)
	}

	return items, nil
}

// nullString maps empty strings to SQL NULL.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

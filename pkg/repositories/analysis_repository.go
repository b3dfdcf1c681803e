package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/suraksha-labs/occupancy-engine/pkg/database"
	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

// AnalysisRepository provides data access for classification records.
// Analyses are created once and never updated.
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *models.Analysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Analysis, error)
	GetRecent(ctx context.Context, limit int) ([]*models.Analysis, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	// AvgProcessingMs averages the recorded processing durations. The bool
	// result is false when no analyses carry a duration yet.
	AvgProcessingMs(ctx context.Context) (float64, bool, error)
	// ConfidenceCounts aggregates suggestion confidence levels across all
	// stored analyses.
	ConfidenceCounts(ctx context.Context) (map[models.Confidence]int, error)
}

type analysisRepository struct {
	db *database.DB
}

// NewAnalysisRepository creates a new AnalysisRepository.
func NewAnalysisRepository(db *database.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

var _ AnalysisRepository = (*analysisRepository)(nil)

func (r *analysisRepository) Create(ctx context.Context, analysis *models.Analysis) error {
	suggestions := analysis.Suggestions
	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	query := `
		INSERT INTO analyses (business_description, suggestions, overall_reasoning, processing_ms)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err = r.db.QueryRow(ctx, query,
		analysis.BusinessDescription,
		suggestionsJSON,
		analysis.OverallReasoning,
		analysis.ProcessingMs,
	).Scan(&analysis.ID, &analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

func (r *analysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Analysis, error) {
	query := `
		SELECT id, business_description, suggestions, overall_reasoning, processing_ms, created_at
		FROM analyses
		WHERE id = $1`

	analysis, err := scanAnalysis(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Analysis not found
		}
		return nil, err
	}

	return analysis, nil
}

func (r *analysisRepository) GetRecent(ctx context.Context, limit int) ([]*models.Analysis, error) {
	query := `
		SELECT id, business_description, suggestions, overall_reasoning, processing_ms, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*models.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}

	return analyses, nil
}

func (r *analysisRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM analyses WHERE created_at >= $1`, since).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

func (r *analysisRepository) AvgProcessingMs(ctx context.Context) (float64, bool, error) {
	var avg *float64
	err := r.db.QueryRow(ctx,
		`SELECT AVG(processing_ms) FROM analyses WHERE processing_ms > 0`).
		Scan(&avg)
	if err != nil {
		return 0, false, fmt.Errorf("failed to average processing time: %w", err)
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

func (r *analysisRepository) ConfidenceCounts(ctx context.Context) (map[models.Confidence]int, error) {
	query := `
		SELECT COALESCE(s->>'confidence', 'medium') AS confidence, COUNT(*)
		FROM analyses, jsonb_array_elements(suggestions) AS s
		GROUP BY 1`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate confidence levels: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Confidence]int)
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan confidence count: %w", err)
		}
		confidence := models.Confidence(level)
		if !confidence.IsValid() {
			confidence = models.ConfidenceMedium
		}
		counts[confidence] += count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating confidence counts: %w", err)
	}

	return counts, nil
}

func scanAnalysis(row pgx.Row) (*models.Analysis, error) {
	var a models.Analysis
	var suggestionsJSON []byte

	err := row.Scan(&a.ID, &a.BusinessDescription, &suggestionsJSON, &a.OverallReasoning, &a.ProcessingMs, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan analysis: %w", err)
	}

	if err := json.Unmarshal(suggestionsJSON, &a.Suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}

	return &a, nil
}

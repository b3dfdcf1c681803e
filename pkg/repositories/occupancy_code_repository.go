package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/suraksha-labs/occupancy-engine/pkg/apperrors"
	"github.com/suraksha-labs/occupancy-engine/pkg/database"
	"github.com/suraksha-labs/occupancy-engine/pkg/models"
)

// OccupancyCodeRepository provides data access for the master code list.
type OccupancyCodeRepository interface {
	// Create inserts one code. A duplicate code returns apperrors.ErrConflict.
	Create(ctx context.Context, code *models.OccupancyCode) error
	GetAll(ctx context.Context) ([]*models.OccupancyCode, error)
	ListCodes(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type occupancyCodeRepository struct {
	db *database.DB
}

// NewOccupancyCodeRepository creates a new OccupancyCodeRepository.
func NewOccupancyCodeRepository(db *database.DB) OccupancyCodeRepository {
	return &occupancyCodeRepository{db: db}
}

var _ OccupancyCodeRepository = (*occupancyCodeRepository)(nil)

const uniqueViolationCode = "23505"

func (r *occupancyCodeRepository) Create(ctx context.Context, code *models.OccupancyCode) error {
	query := `
		INSERT INTO occupancy_codes (code, description)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, code.Code, code.Description).
		Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to create occupancy code: %w", err)
	}

	return nil
}

func (r *occupancyCodeRepository) GetAll(ctx context.Context) ([]*models.OccupancyCode, error) {
	query := `
		SELECT id, code, description, created_at
		FROM occupancy_codes
		ORDER BY created_at, code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query occupancy codes: %w", err)
	}
	defer rows.Close()

	var codes []*models.OccupancyCode
	for rows.Next() {
		var c models.OccupancyCode
		if err := rows.Scan(&c.ID, &c.Code, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan occupancy code: %w", err)
		}
		codes = append(codes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating occupancy codes: %w", err)
	}

	return codes, nil
}

func (r *occupancyCodeRepository) ListCodes(ctx context.Context) ([]string, error) {
	query := `SELECT code FROM occupancy_codes ORDER BY created_at, code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query code list: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan code: %w", err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating code list: %w", err)
	}

	return codes, nil
}

func (r *occupancyCodeRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM occupancy_codes WHERE code = $1)`, code).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check occupancy code: %w", err)
	}
	return exists, nil
}

func (r *occupancyCodeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM occupancy_codes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count occupancy codes: %w", err)
	}
	return count, nil
}

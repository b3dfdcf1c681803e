package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/apperrors"
	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/repositories"
)

// ReloadResult summarizes a registry reload pass.
type ReloadResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

// OccupancyMasterService owns the authoritative set of occupancy codes.
// Classification output is filtered against this set, so every consumer
// goes through IsValid rather than re-reading the database.
type OccupancyMasterService interface {
	// Seed loads the built-in master list into the database if the
	// registry is empty. Safe to call on every startup.
	Seed(ctx context.Context) error
	// Reload re-inserts the built-in master list, skipping codes that
	// already exist.
	Reload(ctx context.Context) (*ReloadResult, error)
	// Codes returns all master codes in sorted order.
	Codes(ctx context.Context) ([]string, error)
	// ListCodes returns the stored registry rows.
	ListCodes(ctx context.Context) ([]*models.OccupancyCode, error)
	// IsValid reports whether code is present in the master list.
	IsValid(ctx context.Context, code string) (bool, error)
}

type occupancyMasterService struct {
	repo   repositories.OccupancyCodeRepository
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]struct{}
}

// NewOccupancyMasterService creates an OccupancyMasterService backed by repo.
func NewOccupancyMasterService(repo repositories.OccupancyCodeRepository, logger *zap.Logger) OccupancyMasterService {
	return &occupancyMasterService{
		repo:   repo,
		logger: logger.Named("occupancy_master"),
	}
}

var _ OccupancyMasterService = (*occupancyMasterService)(nil)

// parseMasterList splits the raw embedded list into trimmed codes,
// dropping blank lines and deduplicating while preserving order.
func parseMasterList() []string {
	lines := strings.Split(masterOccupancyListRaw, "\n")
	seen := make(map[string]struct{}, len(lines))
	codes := make([]string, 0, len(lines))
	for _, line := range lines {
		code := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

func (s *occupancyMasterService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting occupancy codes: %w", err)
	}
	if count > 0 {
		s.logger.Debug("occupancy registry already seeded", zap.Int("count", count))
		return s.refreshCache(ctx)
	}

	codes := parseMasterList()
	inserted := 0
	for _, code := range codes {
		row := &models.OccupancyCode{Code: code, Description: code}
		if err := s.repo.Create(ctx, row); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				continue
			}
			return fmt.Errorf("seeding occupancy code %q: %w", code, err)
		}
		inserted++
	}

	s.logger.Info("seeded occupancy registry", zap.Int("inserted", inserted))
	return s.refreshCache(ctx)
}

func (s *occupancyMasterService) Reload(ctx context.Context) (*ReloadResult, error) {
	codes := parseMasterList()
	result := &ReloadResult{}
	for _, code := range codes {
		err := s.repo.Create(ctx, &models.OccupancyCode{Code: code, Description: code})
		switch {
		case err == nil:
			result.Inserted++
		case errors.Is(err, apperrors.ErrConflict):
			result.Skipped++
		default:
			return nil, fmt.Errorf("reloading occupancy code %q: %w", code, err)
		}
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting occupancy codes: %w", err)
	}
	result.Total = count

	if err := s.refreshCache(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("reloaded occupancy registry",
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("total", result.Total))
	return result, nil
}

func (s *occupancyMasterService) Codes(ctx context.Context) ([]string, error) {
	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing occupancy codes: %w", err)
	}
	sort.Strings(codes)
	return codes, nil
}

func (s *occupancyMasterService) ListCodes(ctx context.Context) ([]*models.OccupancyCode, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing occupancy codes: %w", err)
	}
	return rows, nil
}

func (s *occupancyMasterService) IsValid(ctx context.Context, code string) (bool, error) {
	s.mu.RLock()
	if s.cache != nil {
		_, ok := s.cache[code]
		s.mu.RUnlock()
		return ok, nil
	}
	s.mu.RUnlock()

	if err := s.refreshCache(ctx); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cache[code]
	return ok, nil
}

func (s *occupancyMasterService) refreshCache(ctx context.Context) error {
	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		return fmt.Errorf("refreshing occupancy code cache: %w", err)
	}
	cache := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		cache[code] = struct{}{}
	}
	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()
	return nil
}

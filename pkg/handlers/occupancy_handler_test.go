package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/services"
)

func TestListCodes(t *testing.T) {
	handler := NewOccupancyHandler(&fakeMasterService{
		ListCodesFunc: func(context.Context) ([]*models.OccupancyCode, error) {
			return []*models.OccupancyCode{
				{Code: "Welders", Description: "Welders"},
				{Code: "Laundries", Description: "Laundries"},
			}, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/occupancy-codes", nil)
	rec := httptest.NewRecorder()
	handler.ListCodes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var codes []models.OccupancyCode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &codes))
	require.Len(t, codes, 2)
	assert.Equal(t, "Welders", codes[0].Code)
}

func TestListCodesEmptyRegistry(t *testing.T) {
	handler := NewOccupancyHandler(&fakeMasterService{
		ListCodesFunc: func(context.Context) ([]*models.OccupancyCode, error) {
			return nil, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/occupancy-codes", nil)
	rec := httptest.NewRecorder()
	handler.ListCodes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestReload(t *testing.T) {
	handler := NewOccupancyHandler(&fakeMasterService{
		ReloadFunc: func(context.Context) (*services.ReloadResult, error) {
			return &services.ReloadResult{Inserted: 2, Skipped: 160, Total: 162}, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reload-occupancy-master", nil)
	rec := httptest.NewRecorder()
	handler.Reload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result services.ReloadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 160, result.Skipped)
	assert.Equal(t, 162, result.Total)
}

func TestReloadFailure(t *testing.T) {
	handler := NewOccupancyHandler(&fakeMasterService{
		ReloadFunc: func(context.Context) (*services.ReloadResult, error) {
			return nil, errors.New("database unavailable")
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reload-occupancy-master", nil)
	rec := httptest.NewRecorder()
	handler.Reload(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "reload_failed")
}

func TestStatsEndpoint(t *testing.T) {
	handler := NewStatsHandler(&fakeStatsService{
		StatsFunc: func(context.Context) (*services.Stats, error) {
			return &services.Stats{AnalysesToday: 4, AccuracyRate: 80, AvgProcessing: "2.1s"}, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	handler.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"analysesToday":4`)
	assert.Contains(t, rec.Body.String(), `"avgProcessing":"2.1s"`)
}

func TestAnalyticsEndpoint(t *testing.T) {
	handler := NewStatsHandler(&fakeStatsService{
		AnalyticsFunc: func(context.Context) (*services.Analytics, error) {
			return &services.Analytics{
				Overview: services.AnalyticsOverview{TotalAnalyses: 12, AccuracyRate: 75},
			}, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	rec := httptest.NewRecorder()
	handler.Analytics(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalAnalyses":12`)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/services"
)

func validMaster(valid ...string) *fakeMasterService {
	return &fakeMasterService{
		IsValidFunc: func(_ context.Context, code string) (bool, error) {
			for _, v := range valid {
				if v == code {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

func feedbackBody(t *testing.T, payload map[string]any) *strings.Reader {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return strings.NewReader(string(body))
}

func TestSubmitFeedbackSuccess(t *testing.T) {
	feedbackID := uuid.New()
	var recorded *models.Feedback
	svc := &fakeFeedbackService{
		RecordFeedbackFunc: func(_ context.Context, feedback *models.Feedback) (*services.FeedbackResult, error) {
			recorded = feedback
			feedback.ID = feedbackID
			return &services.FeedbackResult{Feedback: feedback, Acknowledgment: "Noted, thank you"}, nil
		},
	}
	handler := NewFeedbackHandler(svc, validMaster("Welders"), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", feedbackBody(t, map[string]any{
		"analysisId":       uuid.New().String(),
		"suggestionIndex":  0,
		"occupancyCode":    "Laundries",
		"feedbackType":     "negative",
		"correctionCode":   "Welders",
		"correctionReason": "This is welding work",
	}))
	rec := httptest.NewRecorder()
	handler.SubmitFeedback(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success    bool      `json:"success"`
		Message    string    `json:"message"`
		FeedbackID uuid.UUID `json:"feedbackId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Noted, thank you", resp.Message)
	assert.Equal(t, feedbackID, resp.FeedbackID)

	require.NotNil(t, recorded)
	assert.Equal(t, models.FeedbackNegative, recorded.FeedbackType)
	assert.Equal(t, "Welders", recorded.CorrectionCode)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	handler := NewFeedbackHandler(&fakeFeedbackService{
		RecordFeedbackFunc: func(context.Context, *models.Feedback) (*services.FeedbackResult, error) {
			t.Fatal("record should not be called")
			return nil, nil
		},
	}, validMaster(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", feedbackBody(t, map[string]any{
		"analysisId":   "not-a-uuid",
		"feedbackType": "maybe",
	}))
	rec := httptest.NewRecorder()
	handler.SubmitFeedback(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "analysisId")
	assert.Contains(t, resp.Fields, "feedbackType")
	assert.Contains(t, resp.Fields, "occupancyCode")
}

func TestSubmitFeedbackRejectsUnknownCorrectionCode(t *testing.T) {
	handler := NewFeedbackHandler(&fakeFeedbackService{
		RecordFeedbackFunc: func(context.Context, *models.Feedback) (*services.FeedbackResult, error) {
			t.Fatal("record should not be called")
			return nil, nil
		},
	}, validMaster("Welders"), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", feedbackBody(t, map[string]any{
		"analysisId":     uuid.New().String(),
		"occupancyCode":  "Laundries",
		"feedbackType":   "negative",
		"correctionCode": "Made-up code",
	}))
	rec := httptest.NewRecorder()
	handler.SubmitFeedback(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "correctionCode")
}

func TestSubmitFeedbackToleratesMissingCorrectionCode(t *testing.T) {
	svc := &fakeFeedbackService{
		RecordFeedbackFunc: func(_ context.Context, feedback *models.Feedback) (*services.FeedbackResult, error) {
			feedback.ID = uuid.New()
			return &services.FeedbackResult{Feedback: feedback, Acknowledgment: "Feedback recorded successfully"}, nil
		},
	}
	handler := NewFeedbackHandler(svc, validMaster(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", feedbackBody(t, map[string]any{
		"analysisId":    uuid.New().String(),
		"occupancyCode": "Laundries",
		"feedbackType":  "negative",
	}))
	rec := httptest.NewRecorder()
	handler.SubmitFeedback(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecentCorrectionsDefaultLimit(t *testing.T) {
	var gotLimit int
	handler := NewFeedbackHandler(&fakeFeedbackService{
		RecentCorrectionsFunc: func(_ context.Context, limit int) ([]*models.Feedback, error) {
			gotLimit = limit
			return nil, nil
		},
	}, validMaster(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/recent-corrections", nil)
	rec := httptest.NewRecorder()
	handler.RecentCorrections(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultRecentCorrections, gotLimit)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestRecentCorrectionsCustomLimit(t *testing.T) {
	corrections := []*models.Feedback{
		{ID: uuid.New(), OccupancyCode: "X", CorrectionCode: "Y", FeedbackType: models.FeedbackNegative},
	}
	handler := NewFeedbackHandler(&fakeFeedbackService{
		RecentCorrectionsFunc: func(_ context.Context, limit int) ([]*models.Feedback, error) {
			assert.Equal(t, 10, limit)
			return corrections, nil
		},
	}, validMaster(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/recent-corrections?limit=10", nil)
	rec := httptest.NewRecorder()
	handler.RecentCorrections(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"correctionCode":"Y"`)
}

func TestRecentCorrectionsRejectsBadLimit(t *testing.T) {
	handler := NewFeedbackHandler(&fakeFeedbackService{}, validMaster(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/recent-corrections?limit=zero", nil)
	rec := httptest.NewRecorder()
	handler.RecentCorrections(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

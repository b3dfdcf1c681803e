package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackType distinguishes accept from reject feedback.
type FeedbackType string

const (
	FeedbackPositive FeedbackType = "positive"
	FeedbackNegative FeedbackType = "negative"
)

// IsValid reports whether t is a known feedback type.
func (t FeedbackType) IsValid() bool {
	return t == FeedbackPositive || t == FeedbackNegative
}

// Feedback is one agent judgment of a suggestion. Append-only: rows are
// never updated or deleted. A negative row carrying a CorrectionCode is a
// "correction" and conditions future classification prompts.
type Feedback struct {
	ID               uuid.UUID    `json:"id"`
	AnalysisID       uuid.UUID    `json:"analysisId"`
	SuggestionIndex  int          `json:"suggestionIndex"`
	OccupancyCode    string       `json:"occupancyCode"`
	FeedbackType     FeedbackType `json:"feedbackType"`
	CorrectionCode   string       `json:"correctionCode,omitempty"`
	CorrectionReason string       `json:"correctionReason,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Confidence is the model-reported confidence of a single suggestion.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// IsValid reports whether c is one of the known confidence levels.
func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Suggestion is one candidate occupancy code proposed by a classification.
// Embedded in an Analysis; never persisted on its own. Occupancy always
// equals an OccupancyCode.Code from the master list.
type Suggestion struct {
	Occupancy  string     `json:"occupancy"`
	Reason     string     `json:"reason"`
	Confidence Confidence `json:"confidence,omitempty"`
}

// Analysis is one classification request's record. Created exactly once per
// classification call and immutable thereafter.
type Analysis struct {
	ID                  uuid.UUID    `json:"id"`
	BusinessDescription string       `json:"businessDescription"`
	Suggestions         []Suggestion `json:"suggestions"`
	OverallReasoning    string       `json:"overallReasoning"`
	ProcessingMs        int64        `json:"processingMs"`
	CreatedAt           time.Time    `json:"createdAt"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// OccupancyCode is one entry of the authoritative master list. Immutable
// reference data: seeded once, never mutated, joined everywhere by Code.
type OccupancyCode struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

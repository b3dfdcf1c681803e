package apperrors

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrInvalidCode = errors.New("occupancy code not in master list")
)

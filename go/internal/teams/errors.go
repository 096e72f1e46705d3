package teams

import "errors"

var (
	// ErrValidation is returned when a create request is missing or has out-of-range fields
	ErrValidation = errors.New("invalid team")

	// ErrNotFound is returned when no team has the requested ID
	ErrNotFound = errors.New("team not found")
)

package player

import "errors"

var (
	// ErrValidation is returned when a create request is missing or has out-of-range fields
	ErrValidation = errors.New("invalid player")

	// ErrTeamNotFound is returned when the requested team does not exist
	ErrTeamNotFound = errors.New("team not found")

	// ErrNotFound is returned when no player has the requested ID
	ErrNotFound = errors.New("player not found")
)

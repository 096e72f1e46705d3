package player

import "github.com/mcdev12/liga/go/internal/models"

// CreatePlayerRequest represents the data needed to create a new player
type CreatePlayerRequest struct {
	Name         string          `json:"name"`
	Photo        string          `json:"photo,omitempty"`
	Age          int             `json:"age,omitempty"`
	Position     models.Position `json:"position,omitempty"`
	TeamID       string          `json:"teamId"`
	Nationality  string          `json:"nationality,omitempty"`
	JerseyNumber int             `json:"jerseyNumber,omitempty"`
}

// Defaults are applied to optional fields left empty on creation
type Defaults struct {
	Photo       string
	Nationality string
}

const (
	MinAge          = 16
	MaxAge          = 45
	MinJerseyNumber = 1
	MaxJerseyNumber = 99

	// DefaultAge, DefaultJerseyNumber and DefaultPosition are what a fresh
	// player form starts with
	DefaultAge          = 20
	DefaultJerseyNumber = 1
	DefaultPosition     = models.PositionMidfielder

	DefaultPhoto       = "https://images.pexels.com/photos/1884236/pexels-photo-1884236.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop"
	DefaultNationality = "Colombia"
)

package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/liga/go/internal/events"
	"github.com/mcdev12/liga/go/internal/models"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	AppendPlayer(ctx context.Context, player models.Player) error
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListPlayers(ctx context.Context) []models.Player
}

// TeamApp resolves the owning team of a new player
type TeamApp interface {
	GetTeam(ctx context.Context, id string) (*models.Team, error)
}

// App handles player business logic
type App struct {
	repo      PlayerRepository
	teamApp   TeamApp
	publisher events.Publisher
	clock     clockwork.Clock
	defaults  Defaults
	newID     func() string
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, teamApp TeamApp, publisher events.Publisher, clock clockwork.Clock, defaults Defaults) *App {
	if defaults.Photo == "" {
		defaults.Photo = DefaultPhoto
	}
	if defaults.Nationality == "" {
		defaults.Nationality = DefaultNationality
	}
	return &App{
		repo:      repo,
		teamApp:   teamApp,
		publisher: publisher,
		clock:     clock,
		defaults:  defaults,
		newID:     uuid.NewString,
	}
}

// CreatePlayer validates req, resolves the owning team and appends a new
// player. Rejected requests leave the collection untouched.
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	req = a.normalize(req)
	if err := a.validateCreatePlayerRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := a.teamApp.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTeamNotFound, req.TeamID, err)
	}

	player := models.Player{
		ID:           a.newID(),
		Name:         req.Name,
		Photo:        req.Photo,
		Age:          req.Age,
		Position:     req.Position,
		TeamID:       team.ID,
		TeamName:     team.Name,
		Nationality:  req.Nationality,
		JerseyNumber: req.JerseyNumber,
	}
	if err := a.repo.AppendPlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info().
		Str("player_id", player.ID).
		Str("name", player.Name).
		Str("team_id", player.TeamID).
		Msg("created player")

	events.Emit(ctx, a.publisher, events.TypePlayerCreated, a.clock.Now(), player)
	return &player, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// ListPlayers retrieves all players
func (a *App) ListPlayers(ctx context.Context) []models.Player {
	return a.repo.ListPlayers(ctx)
}

func (a *App) normalize(req CreatePlayerRequest) CreatePlayerRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.TeamID = strings.TrimSpace(req.TeamID)
	req.Photo = strings.TrimSpace(req.Photo)
	req.Nationality = strings.TrimSpace(req.Nationality)
	if req.Photo == "" {
		req.Photo = a.defaults.Photo
	}
	if req.Nationality == "" {
		req.Nationality = a.defaults.Nationality
	}
	if req.Age == 0 {
		req.Age = DefaultAge
	}
	if req.JerseyNumber == 0 {
		req.JerseyNumber = DefaultJerseyNumber
	}
	if req.Position == "" {
		req.Position = DefaultPosition
	} else if p, err := models.ParsePosition(string(req.Position)); err == nil {
		req.Position = p
	}
	return req
}

// validateCreatePlayerRequest validates a normalized create player request
func (a *App) validateCreatePlayerRequest(req CreatePlayerRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.TeamID == "" {
		return fmt.Errorf("%w: team is required", ErrValidation)
	}
	if req.Age < MinAge || req.Age > MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrValidation, MinAge, MaxAge)
	}
	if req.JerseyNumber < MinJerseyNumber || req.JerseyNumber > MaxJerseyNumber {
		return fmt.Errorf("%w: jersey number must be between %d and %d", ErrValidation, MinJerseyNumber, MaxJerseyNumber)
	}
	if !req.Position.Valid() {
		return fmt.Errorf("%w: unknown position %q", ErrValidation, req.Position)
	}
	return nil
}

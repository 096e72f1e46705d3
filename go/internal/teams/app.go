package teams

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

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	AppendTeam(ctx context.Context, team models.Team) error
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) []models.Team
}

// App handles teams business logic
type App struct {
	repo      TeamsRepository
	publisher events.Publisher
	clock     clockwork.Clock
	defaults  Defaults
	newID     func() string
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, publisher events.Publisher, clock clockwork.Clock, defaults Defaults) *App {
	if defaults.Logo == "" {
		defaults.Logo = DefaultLogo
	}
	return &App{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
		defaults:  defaults,
		newID:     uuid.NewString,
	}
}

// CreateTeam validates req and appends a new team. On a validation error the
// collection is left untouched.
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	req = a.normalize(req)
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := models.Team{
		ID:          a.newID(),
		Name:        req.Name,
		Logo:        req.Logo,
		FoundedYear: req.FoundedYear,
		City:        req.City,
		Stadium:     req.Stadium,
	}
	if err := a.repo.AppendTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().
		Str("team_id", team.ID).
		Str("name", team.Name).
		Str("city", team.City).
		Msg("created team")

	events.Emit(ctx, a.publisher, events.TypeTeamCreated, a.clock.Now(), team)
	return &team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams retrieves all teams
func (a *App) ListTeams(ctx context.Context) []models.Team {
	return a.repo.ListTeams(ctx)
}

func (a *App) normalize(req CreateTeamRequest) CreateTeamRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.Stadium = strings.TrimSpace(req.Stadium)
	req.Logo = strings.TrimSpace(req.Logo)
	if req.Logo == "" {
		req.Logo = a.defaults.Logo
	}
	if req.FoundedYear == 0 {
		req.FoundedYear = a.clock.Now().Year()
	}
	return req
}

// validateCreateTeamRequest validates a normalized create team request
func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	if req.Stadium == "" {
		return fmt.Errorf("%w: stadium is required", ErrValidation)
	}
	if year := a.clock.Now().Year(); req.FoundedYear < MinFoundedYear || req.FoundedYear > year {
		return fmt.Errorf("%w: founded year must be between %d and %d", ErrValidation, MinFoundedYear, year)
	}
	return nil
}

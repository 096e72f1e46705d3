package roster

import (
	"context"

	"github.com/mcdev12/liga/go/internal/models"
)

// TabID names one of the three top-level views
type TabID string

const (
	TabTeams   TabID = "teams"
	TabPlayers TabID = "players"
	TabSearch  TabID = "search"
)

// Tab is a navigation entry. Count is nil for tabs without a badge.
type Tab struct {
	ID    TabID `json:"id"`
	Count *int  `json:"count,omitempty"`
}

// TeamLister provides the current team collection
type TeamLister interface {
	ListTeams(ctx context.Context) []models.Team
}

// PlayerLister provides the current player collection
type PlayerLister interface {
	ListPlayers(ctx context.Context) []models.Player
}

// App builds the read views over the team and player collections
type App struct {
	teams   TeamLister
	players PlayerLister
}

// NewApp creates a new roster App
func NewApp(teams TeamLister, players PlayerLister) *App {
	return &App{
		teams:   teams,
		players: players,
	}
}

// TeamSummaries returns every team with its player count
func (a *App) TeamSummaries(ctx context.Context) []TeamSummary {
	return ComputePlayerCounts(a.teams.ListTeams(ctx), a.players.ListPlayers(ctx))
}

// Players returns every player with its team name resolved from the current teams
func (a *App) Players(ctx context.Context) []models.Player {
	return ResolveTeamNames(a.teams.ListTeams(ctx), a.players.ListPlayers(ctx))
}

// PlayersByTeam returns the resolved players of one team
func (a *App) PlayersByTeam(ctx context.Context, teamID string) []models.Player {
	return PlayersOnTeam(a.Players(ctx), teamID)
}

// Search runs term against both collections
func (a *App) Search(ctx context.Context, term string) Results {
	return Search(a.teams.ListTeams(ctx), a.players.ListPlayers(ctx), term)
}

// Tabs returns the navigation entries with their badge counts
func (a *App) Tabs(ctx context.Context) []Tab {
	teamCount := len(a.teams.ListTeams(ctx))
	playerCount := len(a.players.ListPlayers(ctx))
	return []Tab{
		{ID: TabTeams, Count: &teamCount},
		{ID: TabPlayers, Count: &playerCount},
		{ID: TabSearch},
	}
}

package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/liga/go/internal/models"
)

type staticTeams []models.Team

func (s staticTeams) ListTeams(ctx context.Context) []models.Team { return s }

type staticPlayers []models.Player

func (s staticPlayers) ListPlayers(ctx context.Context) []models.Player { return s }

func setupRosterApp() *App {
	teams := sampleTeams()
	teams[0].Name = "Nacional"
	return NewApp(staticTeams(teams), staticPlayers(samplePlayers()))
}

func TestApp_TeamSummaries(t *testing.T) {
	summaries := setupRosterApp().TeamSummaries(context.Background())

	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].PlayerCount)
	assert.Equal(t, 1, summaries[1].PlayerCount)
}

func TestApp_Players_ResolvesTeamNames(t *testing.T) {
	players := setupRosterApp().Players(context.Background())

	require.Len(t, players, 2)
	assert.Equal(t, "Nacional", players[1].TeamName)
}

func TestApp_PlayersByTeam(t *testing.T) {
	players := setupRosterApp().PlayersByTeam(context.Background(), "2")

	require.Len(t, players, 1)
	assert.Equal(t, "James Rodríguez", players[0].Name)
}

func TestApp_Tabs(t *testing.T) {
	tabs := setupRosterApp().Tabs(context.Background())

	require.Len(t, tabs, 3)
	assert.Equal(t, TabTeams, tabs[0].ID)
	require.NotNil(t, tabs[0].Count)
	assert.Equal(t, 2, *tabs[0].Count)
	assert.Equal(t, TabPlayers, tabs[1].ID)
	require.NotNil(t, tabs[1].Count)
	assert.Equal(t, 2, *tabs[1].Count)
	assert.Equal(t, TabSearch, tabs[2].ID)
	assert.Nil(t, tabs[2].Count)
}

func TestApp_Search(t *testing.T) {
	app := setupRosterApp()
	ctx := context.Background()

	assert.True(t, app.Search(ctx, " ").Prompt)

	results := app.Search(ctx, "medellín")
	require.Len(t, results.Teams, 1)
	assert.Equal(t, "Nacional", results.Teams[0].Name)
}

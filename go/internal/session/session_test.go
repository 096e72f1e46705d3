package session

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/player"
	"github.com/mcdev12/liga/go/internal/roster"
	"github.com/mcdev12/liga/go/internal/store"
	"github.com/mcdev12/liga/go/internal/store/memkv"
	"github.com/mcdev12/liga/go/internal/teams"
)

type fixture struct {
	session     *Session
	teamStore   *store.Store[[]models.Team]
	playerStore *store.Store[[]models.Player]
}

func setupSession(t *testing.T) fixture {
	t.Helper()
	backend := memkv.New()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

	teamStore := store.New[[]models.Team](backend, "liga-teams", []models.Team{})
	playerStore := store.New[[]models.Player](backend, "liga-players", []models.Player{})

	teamsApp := teams.NewApp(teams.NewRepository(teamStore), nil, clock, teams.Defaults{})
	playerApp := player.NewApp(player.NewRepository(playerStore), teamsApp, nil, clock, player.Defaults{})
	rosterApp := roster.NewApp(teamsApp, playerApp)

	return fixture{
		session:     New(teamsApp, playerApp, rosterApp, clock),
		teamStore:   teamStore,
		playerStore: playerStore,
	}
}

func addTeam(t *testing.T, s *Session, name, city string) *models.Team {
	t.Helper()
	s.OpenTeamForm()
	s.EditTeamDraft(func(d *teams.CreateTeamRequest) {
		d.Name = name
		d.City = city
		d.Stadium = "Estadio " + city
	})
	team, err := s.SubmitTeamForm(context.Background())
	require.NoError(t, err)
	return team
}

func TestSession_InitialState(t *testing.T) {
	f := setupSession(t)

	assert.Equal(t, roster.TabTeams, f.session.ActiveTab())
	assert.False(t, f.session.TeamForm().Open)
	assert.False(t, f.session.PlayerForm().Open)
	assert.Equal(t, 2026, f.session.TeamForm().Draft.FoundedYear)

	draft := f.session.PlayerForm().Draft
	assert.Equal(t, 20, draft.Age)
	assert.Equal(t, 1, draft.JerseyNumber)
	assert.Equal(t, models.PositionMidfielder, draft.Position)
	assert.Equal(t, "Colombia", draft.Nationality)
}

func TestSession_SelectTab(t *testing.T) {
	f := setupSession(t)

	f.session.SelectTab(roster.TabSearch)
	assert.Equal(t, roster.TabSearch, f.session.ActiveTab())

	f.session.SelectTab("standings")
	assert.Equal(t, roster.TabSearch, f.session.ActiveTab())
}

func TestSession_SubmitTeamForm_Rejected(t *testing.T) {
	f := setupSession(t)
	ctx := context.Background()

	f.session.OpenTeamForm()
	f.session.EditTeamDraft(func(d *teams.CreateTeamRequest) {
		d.Name = ""
		d.City = "Bogotá"
		d.Stadium = "El Campín"
	})

	team, err := f.session.SubmitTeamForm(ctx)

	assert.Nil(t, team)
	assert.ErrorIs(t, err, teams.ErrValidation)
	form := f.session.TeamForm()
	assert.True(t, form.Open)
	assert.Equal(t, "Bogotá", form.Draft.City)
	assert.ErrorIs(t, form.Err, teams.ErrValidation)
	assert.Empty(t, f.teamStore.Get(ctx))
}

func TestSession_SubmitTeamForm_ResetsAndCloses(t *testing.T) {
	f := setupSession(t)

	team := addTeam(t, f.session, "Deportes Tolima", "Ibagué")

	form := f.session.TeamForm()
	assert.False(t, form.Open)
	assert.Empty(t, form.Draft.Name)
	assert.NoError(t, form.Err)
	assert.Equal(t, []models.Team{*team}, f.teamStore.Get(context.Background()))
}

func TestSession_CancelTeamForm(t *testing.T) {
	f := setupSession(t)

	f.session.OpenTeamForm()
	f.session.EditTeamDraft(func(d *teams.CreateTeamRequest) { d.Name = "Half typed" })
	f.session.CancelTeamForm()

	form := f.session.TeamForm()
	assert.False(t, form.Open)
	assert.Empty(t, form.Draft.Name)
	assert.Empty(t, f.teamStore.Get(context.Background()))
}

func TestSession_OpenPlayerForm_RequiresTeam(t *testing.T) {
	f := setupSession(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.session.OpenPlayerForm(ctx), ErrNoTeams)
	assert.False(t, f.session.PlayerForm().Open)

	addTeam(t, f.session, "Atlético Nacional", "Medellín")
	require.NoError(t, f.session.OpenPlayerForm(ctx))
	assert.True(t, f.session.PlayerForm().Open)
}

func TestSession_SubmitPlayerForm_MissingTeam(t *testing.T) {
	f := setupSession(t)
	ctx := context.Background()
	addTeam(t, f.session, "Atlético Nacional", "Medellín")

	require.NoError(t, f.session.OpenPlayerForm(ctx))
	f.session.EditPlayerDraft(func(d *player.CreatePlayerRequest) { d.Name = "Jefferson Lerma" })

	p, err := f.session.SubmitPlayerForm(ctx)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, player.ErrValidation)
	assert.True(t, f.session.PlayerForm().Open)
	assert.Empty(t, f.playerStore.Get(ctx))
}

func TestSession_SubmitPlayerForm(t *testing.T) {
	f := setupSession(t)
	ctx := context.Background()
	team := addTeam(t, f.session, "Atlético Nacional", "Medellín")

	require.NoError(t, f.session.OpenPlayerForm(ctx))
	f.session.EditPlayerDraft(func(d *player.CreatePlayerRequest) {
		d.Name = "Jefferson Lerma"
		d.TeamID = team.ID
		d.JerseyNumber = 8
	})

	p, err := f.session.SubmitPlayerForm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Atlético Nacional", p.TeamName)

	form := f.session.PlayerForm()
	assert.False(t, form.Open)
	assert.Empty(t, form.Draft.TeamID)
	assert.Equal(t, player.DefaultJerseyNumber, form.Draft.JerseyNumber)

	tabs := f.session.Tabs(ctx)
	require.Len(t, tabs, 3)
	assert.Equal(t, 1, *tabs[0].Count)
	assert.Equal(t, 1, *tabs[1].Count)
}

func TestSession_Search(t *testing.T) {
	f := setupSession(t)
	ctx := context.Background()
	addTeam(t, f.session, "Atlético Nacional", "Medellín")
	addTeam(t, f.session, "Millonarios FC", "Bogotá")

	assert.True(t, f.session.Results(ctx).Prompt)

	f.session.SetSearchTerm("mede")
	assert.Equal(t, "mede", f.session.SearchTerm())
	results := f.session.Results(ctx)
	require.Len(t, results.Teams, 1)
	assert.Equal(t, "Atlético Nacional", results.Teams[0].Name)

	f.session.SetSearchTerm("river")
	assert.True(t, f.session.Results(ctx).Empty())
}

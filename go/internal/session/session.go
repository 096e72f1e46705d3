// Package session holds the interactive state of one roster client: the
// active tab, the two creation forms with their drafts, and the search term.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/player"
	"github.com/mcdev12/liga/go/internal/roster"
	"github.com/mcdev12/liga/go/internal/teams"
)

// ErrNoTeams is returned when the player form is opened before any team exists
var ErrNoTeams = errors.New("a team is required before adding players")

// TeamCreator creates teams
type TeamCreator interface {
	CreateTeam(ctx context.Context, req teams.CreateTeamRequest) (*models.Team, error)
}

// PlayerCreator creates players
type PlayerCreator interface {
	CreatePlayer(ctx context.Context, req player.CreatePlayerRequest) (*models.Player, error)
}

// Views provides the derived roster views
type Views interface {
	TeamSummaries(ctx context.Context) []roster.TeamSummary
	Players(ctx context.Context) []models.Player
	Search(ctx context.Context, term string) roster.Results
	Tabs(ctx context.Context) []roster.Tab
}

// Form is a creation form and its current draft
type Form[T any] struct {
	Open  bool `json:"open"`
	Draft T    `json:"draft"`
	// Err is the reason the last submit was rejected
	Err error `json:"-"`
}

// Session is safe for concurrent use
type Session struct {
	mu sync.Mutex

	teams   TeamCreator
	players PlayerCreator
	views   Views
	clock   clockwork.Clock

	active     roster.TabID
	teamForm   Form[teams.CreateTeamRequest]
	playerForm Form[player.CreatePlayerRequest]
	searchTerm string
}

// New creates a session on the teams tab with both forms closed
func New(teamCreator TeamCreator, playerCreator PlayerCreator, views Views, clock clockwork.Clock) *Session {
	s := &Session{
		teams:   teamCreator,
		players: playerCreator,
		views:   views,
		clock:   clock,
		active:  roster.TabTeams,
	}
	s.teamForm.Draft = s.blankTeam()
	s.playerForm.Draft = blankPlayer()
	return s
}

func (s *Session) blankTeam() teams.CreateTeamRequest {
	return teams.CreateTeamRequest{FoundedYear: s.clock.Now().Year()}
}

func blankPlayer() player.CreatePlayerRequest {
	return player.CreatePlayerRequest{
		Age:          player.DefaultAge,
		Position:     player.DefaultPosition,
		Nationality:  player.DefaultNationality,
		JerseyNumber: player.DefaultJerseyNumber,
	}
}

// ActiveTab returns the selected tab
func (s *Session) ActiveTab() roster.TabID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SelectTab switches to tab. Unknown tabs are ignored.
func (s *Session) SelectTab(tab roster.TabID) {
	switch tab {
	case roster.TabTeams, roster.TabPlayers, roster.TabSearch:
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = tab
}

// Tabs returns the navigation entries with badge counts
func (s *Session) Tabs(ctx context.Context) []roster.Tab {
	return s.views.Tabs(ctx)
}

// TeamForm returns a copy of the team form state
func (s *Session) TeamForm() Form[teams.CreateTeamRequest] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teamForm
}

// OpenTeamForm shows the team form, keeping any existing draft
func (s *Session) OpenTeamForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teamForm.Open = true
}

// EditTeamDraft applies fn to the team draft
func (s *Session) EditTeamDraft(fn func(*teams.CreateTeamRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.teamForm.Draft)
}

// CancelTeamForm hides the team form and discards its draft
func (s *Session) CancelTeamForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teamForm = Form[teams.CreateTeamRequest]{Draft: s.blankTeam()}
}

// SubmitTeamForm creates a team from the draft. On success the draft resets
// and the form closes; on rejection the form stays open with the draft and
// the reason in Err.
func (s *Session) SubmitTeamForm(ctx context.Context) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teams.CreateTeam(ctx, s.teamForm.Draft)
	if err != nil {
		s.teamForm.Err = err
		log.Debug().Err(err).Msg("team form rejected")
		return nil, err
	}
	s.teamForm = Form[teams.CreateTeamRequest]{Draft: s.blankTeam()}
	return team, nil
}

// PlayerForm returns a copy of the player form state
func (s *Session) PlayerForm() Form[player.CreatePlayerRequest] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerForm
}

// OpenPlayerForm shows the player form. It fails with ErrNoTeams while the
// team collection is empty.
func (s *Session) OpenPlayerForm(ctx context.Context) error {
	if len(s.views.TeamSummaries(ctx)) == 0 {
		return ErrNoTeams
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerForm.Open = true
	return nil
}

// EditPlayerDraft applies fn to the player draft
func (s *Session) EditPlayerDraft(fn func(*player.CreatePlayerRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.playerForm.Draft)
}

// CancelPlayerForm hides the player form and discards its draft
func (s *Session) CancelPlayerForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerForm = Form[player.CreatePlayerRequest]{Draft: blankPlayer()}
}

// SubmitPlayerForm creates a player from the draft, with the same open/close
// behavior as SubmitTeamForm.
func (s *Session) SubmitPlayerForm(ctx context.Context) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.players.CreatePlayer(ctx, s.playerForm.Draft)
	if err != nil {
		s.playerForm.Err = err
		log.Debug().Err(err).Msg("player form rejected")
		return nil, err
	}
	s.playerForm = Form[player.CreatePlayerRequest]{Draft: blankPlayer()}
	return p, nil
}

// SearchTerm returns the current search term
func (s *Session) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

// SetSearchTerm stores term as typed; it is not trimmed
func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// Results runs the current search term
func (s *Session) Results(ctx context.Context) roster.Results {
	return s.views.Search(ctx, s.SearchTerm())
}

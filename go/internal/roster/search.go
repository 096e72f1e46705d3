package roster

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mcdev12/liga/go/internal/models"
)

// Results is what the search tab shows for a term
type Results struct {
	Term string `json:"term"`
	// Prompt is set when the term is blank. Nothing is searched in that case
	// and the caller shows its empty-state prompt instead of every record.
	Prompt  bool            `json:"prompt"`
	Teams   []TeamSummary   `json:"teams"`
	Players []models.Player `json:"players"`
}

// Empty reports whether a real search matched nothing
func (r Results) Empty() bool {
	return !r.Prompt && len(r.Teams) == 0 && len(r.Players) == 0
}

// Search runs a full search over the base collections. Player counts and
// team names are derived before filtering.
func Search(teams []models.Team, players []models.Player, term string) Results {
	if strings.TrimSpace(term) == "" {
		return Results{
			Term:    term,
			Prompt:  true,
			Teams:   []TeamSummary{},
			Players: []models.Player{},
		}
	}

	summaries := ComputePlayerCounts(teams, players)
	resolved := ResolveTeamNames(teams, players)
	matchedTeams, matchedPlayers := FilterBySearch(summaries, resolved, term)

	return Results{
		Term:    term,
		Teams:   matchedTeams,
		Players: matchedPlayers,
	}
}

// FilterBySearch keeps the teams whose name or city, and the players whose
// name, team name or position contains term, ignoring case. Input order is
// preserved.
func FilterBySearch(teams []TeamSummary, players []models.Player, term string) ([]TeamSummary, []models.Player) {
	m := newMatcher(term)

	matchedTeams := []TeamSummary{}
	for _, t := range teams {
		if m.matches(t.Name) || m.matches(t.City) {
			matchedTeams = append(matchedTeams, t)
		}
	}

	matchedPlayers := []models.Player{}
	for _, p := range players {
		if m.matches(p.Name) || m.matches(p.TeamName) || m.matchesPosition(p.Position) {
			matchedPlayers = append(matchedPlayers, p)
		}
	}

	return matchedTeams, matchedPlayers
}

type matcher struct {
	fold   cases.Caser
	needle string
}

// cases.Caser is stateful, so each search gets its own.
func newMatcher(term string) *matcher {
	fold := cases.Fold()
	return &matcher{fold: fold, needle: fold.String(term)}
}

func (m *matcher) matches(s string) bool {
	return strings.Contains(m.fold.String(s), m.needle)
}

func (m *matcher) matchesPosition(p models.Position) bool {
	for _, label := range p.Labels() {
		if m.matches(label) {
			return true
		}
	}
	return false
}

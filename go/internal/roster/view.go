package roster

import (
	"github.com/mcdev12/liga/go/internal/models"
)

// TeamSummary is a team together with its derived player count
type TeamSummary struct {
	models.Team
	PlayerCount int `json:"playerCount"`
}

// ComputePlayerCounts returns one summary per team, in input order, where
// PlayerCount is the number of players whose TeamID equals the team's ID.
func ComputePlayerCounts(teams []models.Team, players []models.Player) []TeamSummary {
	counts := make(map[string]int, len(teams))
	for _, p := range players {
		counts[p.TeamID]++
	}

	summaries := make([]TeamSummary, len(teams))
	for i, t := range teams {
		summaries[i] = TeamSummary{Team: t, PlayerCount: counts[t.ID]}
	}
	return summaries
}

// ResolveTeamNames returns a copy of players with TeamName looked up from the
// current teams. A player whose team no longer resolves keeps its snapshot.
func ResolveTeamNames(teams []models.Team, players []models.Player) []models.Player {
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	resolved := make([]models.Player, len(players))
	for i, p := range players {
		if name, ok := names[p.TeamID]; ok {
			p.TeamName = name
		}
		resolved[i] = p
	}
	return resolved
}

// PlayersOnTeam returns the players whose TeamID is teamID, in input order
func PlayersOnTeam(players []models.Player, teamID string) []models.Player {
	onTeam := []models.Player{}
	for _, p := range players {
		if p.TeamID == teamID {
			onTeam = append(onTeam, p)
		}
	}
	return onTeam
}

// Package assets embeds the sample league used as the initial value of an
// empty store.
package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/liga/go/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// League is a complete set of teams and players
type League struct {
	Teams   []models.Team
	Players []models.Player
}

type seedTeam struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Logo        string `yaml:"logo"`
	FoundedYear int    `yaml:"founded_year"`
	City        string `yaml:"city"`
	Stadium     string `yaml:"stadium"`
}

type seedPlayer struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Photo        string `yaml:"photo"`
	Age          int    `yaml:"age"`
	Position     string `yaml:"position"`
	TeamID       string `yaml:"team_id"`
	TeamName     string `yaml:"team_name"`
	Nationality  string `yaml:"nationality"`
	JerseyNumber int    `yaml:"jersey_number"`
}

type seedFile struct {
	Teams   []seedTeam   `yaml:"teams"`
	Players []seedPlayer `yaml:"players"`
}

// SampleLeague decodes the embedded sample league
func SampleLeague() (League, error) {
	return ParseLeague(seedYAML)
}

// ParseLeague decodes a league from YAML. Player positions may be codes or
// localized labels.
func ParseLeague(data []byte) (League, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return League{}, fmt.Errorf("failed to parse league: %w", err)
	}

	league := League{
		Teams:   make([]models.Team, 0, len(f.Teams)),
		Players: make([]models.Player, 0, len(f.Players)),
	}
	for _, t := range f.Teams {
		league.Teams = append(league.Teams, models.Team{
			ID:          t.ID,
			Name:        t.Name,
			Logo:        t.Logo,
			FoundedYear: t.FoundedYear,
			City:        t.City,
			Stadium:     t.Stadium,
		})
	}
	for _, p := range f.Players {
		position, err := models.ParsePosition(p.Position)
		if err != nil {
			return League{}, fmt.Errorf("player %s: %w", p.ID, err)
		}
		league.Players = append(league.Players, models.Player{
			ID:           p.ID,
			Name:         p.Name,
			Photo:        p.Photo,
			Age:          p.Age,
			Position:     position,
			TeamID:       p.TeamID,
			TeamName:     p.TeamName,
			Nationality:  p.Nationality,
			JerseyNumber: p.JerseyNumber,
		})
	}
	return league, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/liga/go/internal/player"
	"github.com/mcdev12/liga/go/internal/teams"
)

// League holds the settings of one roster deployment
type League struct {
	Locale   string   `yaml:"locale"`
	Defaults Defaults `yaml:"defaults"`
	Storage  Storage  `yaml:"storage"`
	// SampleFallback makes the sample league the value of empty stores
	SampleFallback bool `yaml:"sample_fallback"`
}

type Defaults struct {
	Logo        string `yaml:"logo"`
	Photo       string `yaml:"photo"`
	Nationality string `yaml:"nationality"`
}

// Storage names the keys the collections are persisted under
type Storage struct {
	TeamsKey   string `yaml:"teams_key"`
	PlayersKey string `yaml:"players_key"`
}

// DefaultLeague returns the settings used when no file is configured
func DefaultLeague() League {
	return League{
		Locale: "es",
		Defaults: Defaults{
			Logo:        teams.DefaultLogo,
			Photo:       player.DefaultPhoto,
			Nationality: player.DefaultNationality,
		},
		Storage: Storage{
			TeamsKey:   "liga-teams",
			PlayersKey: "liga-players",
		},
		SampleFallback: true,
	}
}

// LoadLeague reads path over DefaultLeague. An empty path or a missing file
// yields the defaults.
func LoadLeague(path string) (League, error) {
	league := DefaultLeague()
	if path == "" {
		return league, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return league, nil
	}
	if err != nil {
		return League{}, fmt.Errorf("failed to read league config: %w", err)
	}
	if err := yaml.Unmarshal(data, &league); err != nil {
		return League{}, fmt.Errorf("failed to parse league config: %w", err)
	}
	if _, err := language.Parse(league.Locale); err != nil {
		return League{}, fmt.Errorf("invalid locale %q: %w", league.Locale, err)
	}
	if league.Storage.TeamsKey == "" || league.Storage.PlayersKey == "" {
		return League{}, errors.New("storage keys must not be empty")
	}
	if league.Storage.TeamsKey == league.Storage.PlayersKey {
		return League{}, errors.New("teams and players must use different storage keys")
	}
	return league, nil
}

// Language returns the display language of the league
func (l League) Language() language.Tag {
	tag, err := language.Parse(l.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// TeamDefaults converts the defaults for the teams app
func (l League) TeamDefaults() teams.Defaults {
	return teams.Defaults{Logo: l.Defaults.Logo}
}

// PlayerDefaults converts the defaults for the player app
func (l League) PlayerDefaults() player.Defaults {
	return player.Defaults{Photo: l.Defaults.Photo, Nationality: l.Defaults.Nationality}
}

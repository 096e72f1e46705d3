package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Position is the on-field role of a player
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Positions lists every valid position in display order
var Positions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

var positionLabels = map[language.Tag]map[Position]string{
	language.Spanish: {
		PositionGoalkeeper: "Portero",
		PositionDefender:   "Defensa",
		PositionMidfielder: "Mediocampista",
		PositionForward:    "Delantero",
	},
}

var labelMatcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// Valid reports whether p is one of the known positions
func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// Label returns the display label of p for the given locale. Unknown locales
// fall back to English, which is the position code itself.
func (p Position) Label(tag language.Tag) string {
	_, idx, _ := labelMatcher.Match(tag)
	if idx == 1 {
		if label, ok := positionLabels[language.Spanish][p]; ok {
			return label
		}
	}
	return string(p)
}

// Labels returns every label p is known by, starting with its code
func (p Position) Labels() []string {
	labels := []string{string(p)}
	for _, byPosition := range positionLabels {
		if label, ok := byPosition[p]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}

// ParsePosition accepts a position code or any localized label, case-insensitively
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	for _, p := range Positions {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
		for _, byPosition := range positionLabels {
			if strings.EqualFold(s, byPosition[p]) {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("unknown position %q", s)
}

// UnmarshalJSON normalizes localized labels to position codes
func (p *Position) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*p = ""
		return nil
	}
	parsed, err := ParsePosition(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

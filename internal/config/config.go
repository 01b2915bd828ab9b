// Package config provides YAML-based game configuration loading and
// difficulty presets for the pursuit game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
)

// PursuitConfig contains all configuration for the pursuit game.
type PursuitConfig struct {
	Points PointsConfig      `yaml:"points"`
	Ghosts GhostsConfig      `yaml:"ghosts"`
	Legend map[string]string `yaml:"legend,omitempty"` // extra map characters, e.g. "o": "pellet"
}

// PointsConfig defines what scoring events are worth.
type PointsConfig struct {
	Pellet int `yaml:"pellet"`
	Ghost  int `yaml:"ghost"` // awarded (or, if negative, taken) when caught
}

// GhostsConfig defines ghost behaviour.
type GhostsConfig struct {
	Lookahead     int     `yaml:"lookahead"`      // cells ahead of the player an ambusher aims at
	Shyness       float64 `yaml:"shyness"`        // shy ghosts retreat when this close
	RetreatCorner string  `yaml:"retreat_corner"` // north_west, north_east, south_west, south_east
	MoveEvery     int     `yaml:"move_every"`     // ghosts step once every N player turns
}

// Validate checks that values are usable.
func (c PursuitConfig) Validate() error {
	if c.Points.Pellet < 0 {
		return fmt.Errorf("config: points.pellet must not be negative, got %d", c.Points.Pellet)
	}
	if c.Ghosts.Lookahead < 0 {
		return fmt.Errorf("config: ghosts.lookahead must not be negative, got %d", c.Ghosts.Lookahead)
	}
	if c.Ghosts.Shyness < 0 {
		return fmt.Errorf("config: ghosts.shyness must not be negative, got %g", c.Ghosts.Shyness)
	}
	if c.Ghosts.MoveEvery < 1 {
		return fmt.Errorf("config: ghosts.move_every must be at least 1, got %d", c.Ghosts.MoveEvery)
	}
	if _, ok := core.ParseCorner(c.Ghosts.RetreatCorner); !ok {
		return fmt.Errorf("config: unknown ghosts.retreat_corner %q", c.Ghosts.RetreatCorner)
	}
	return nil
}

// Tuning converts the ghost settings for the engine.
// An unknown retreat corner falls back to the default one.
func (c PursuitConfig) Tuning() core.Tuning {
	t := core.DefaultTuning()
	t.Lookahead = c.Ghosts.Lookahead
	t.Shyness = c.Ghosts.Shyness
	if corner, ok := core.ParseCorner(c.Ghosts.RetreatCorner); ok {
		t.RetreatCorner = corner
	}
	return t
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. The empty string is normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

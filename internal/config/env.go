package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// pursuitEnv holds raw env values. Unset variables stay nil and leave the
// file configuration alone.
type pursuitEnv struct {
	PelletPoints  *int     `env:"PURSUIT_PELLET_POINTS"`
	GhostPoints   *int     `env:"PURSUIT_GHOST_POINTS"`
	Lookahead     *int     `env:"PURSUIT_LOOKAHEAD"`
	Shyness       *float64 `env:"PURSUIT_SHYNESS"`
	RetreatCorner *string  `env:"PURSUIT_RETREAT_CORNER"`
	MoveEvery     *int     `env:"PURSUIT_MOVE_EVERY"`
}

// ApplyEnv overrides cfg with any PURSUIT_* environment variables that are set.
func ApplyEnv(cfg *PursuitConfig) error {
	var raw pursuitEnv
	if err := env.Parse(&raw); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}

	if raw.PelletPoints != nil {
		cfg.Points.Pellet = *raw.PelletPoints
	}
	if raw.GhostPoints != nil {
		cfg.Points.Ghost = *raw.GhostPoints
	}
	if raw.Lookahead != nil {
		cfg.Ghosts.Lookahead = *raw.Lookahead
	}
	if raw.Shyness != nil {
		cfg.Ghosts.Shyness = *raw.Shyness
	}
	if raw.RetreatCorner != nil {
		cfg.Ghosts.RetreatCorner = *raw.RetreatCorner
	}
	if raw.MoveEvery != nil {
		cfg.Ghosts.MoveEvery = *raw.MoveEvery
	}
	return nil
}

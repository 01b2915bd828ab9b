package config

import (
	_ "embed"
)

//go:embed defaults/pursuit.yaml
var defaultPursuitYAML []byte

// DefaultPursuitConfig returns the default pursuit configuration.
func DefaultPursuitConfig() PursuitConfig {
	return PursuitConfig{
		Points: PointsConfig{
			Pellet: 10,
			Ghost:  0,
		},
		Ghosts: GhostsConfig{
			Lookahead:     2,
			Shyness:       8,
			RetreatCorner: "south_east",
			MoveEvery:     2,
		},
	}
}

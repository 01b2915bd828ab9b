package pursuit

import (
	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
)

// Points is the standard point calculator: a pellet is worth its own value,
// being caught is worth the configured ghost points.
type Points struct {
	ghost int

	Pellets    int // pellets eaten
	Encounters int // ghost encounters
}

// NewPoints creates a calculator from the points config.
func NewPoints(cfg config.PointsConfig) *Points {
	return &Points{ghost: cfg.Ghost}
}

// GhostEncounter implements core.PointCalculator.
func (p *Points) GhostEncounter(player, ghost *core.Unit) {
	p.Encounters++
	player.AddPoints(p.ghost)
}

// PelletConsumed implements core.PointCalculator.
func (p *Points) PelletConsumed(player, pellet *core.Unit) {
	p.Pellets++
	player.AddPoints(pellet.Value)
}

var _ core.PointCalculator = (*Points)(nil)

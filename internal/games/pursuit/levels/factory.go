package levels

import "github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"

// BoardFactory creates the terrain of each cell.
type BoardFactory interface {
	CreateGround() core.Terrain
	CreateWall() core.Terrain
}

// UnitFactory creates fresh, unplaced units.
type UnitFactory interface {
	CreateGhost(s core.Strategy) *core.Unit
	CreatePellet() *core.Unit
	CreatePlayer() *core.Unit
}

// Factory creates both the terrain and the units of a level.
type Factory interface {
	BoardFactory
	UnitFactory
}

// DefaultPelletValue is what a pellet is worth when nothing else is configured.
const DefaultPelletValue = 10

// DefaultFactory is the standard BoardFactory and UnitFactory.
type DefaultFactory struct {
	PelletValue int
}

// NewDefaultFactory creates a factory producing pellets worth pelletValue.
func NewDefaultFactory(pelletValue int) *DefaultFactory {
	return &DefaultFactory{PelletValue: pelletValue}
}

func (f *DefaultFactory) CreateGround() core.Terrain { return core.TerrainGround }
func (f *DefaultFactory) CreateWall() core.Terrain   { return core.TerrainWall }

func (f *DefaultFactory) CreateGhost(s core.Strategy) *core.Unit { return core.NewGhost(s) }
func (f *DefaultFactory) CreatePellet() *core.Unit               { return core.NewPellet(f.PelletValue) }
func (f *DefaultFactory) CreatePlayer() *core.Unit               { return core.NewPlayer() }

var _ Factory = (*DefaultFactory)(nil)

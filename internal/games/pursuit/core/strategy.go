package core

// Corner names one of the four board corners.
type Corner uint8

const (
	CornerNorthWest Corner = iota
	CornerNorthEast
	CornerSouthWest
	CornerSouthEast
)

var cornerNames = map[Corner]string{
	CornerNorthWest: "north_west",
	CornerNorthEast: "north_east",
	CornerSouthWest: "south_west",
	CornerSouthEast: "south_east",
}

// String returns the config name of the corner.
func (c Corner) String() string {
	if name, ok := cornerNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCorner converts a config name back to a Corner.
func ParseCorner(name string) (Corner, bool) {
	for c, n := range cornerNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// On returns the coordinate of the corner on board b.
func (c Corner) On(b *Board) Coord {
	switch c {
	case CornerNorthWest:
		return C(0, 0)
	case CornerNorthEast:
		return C(b.w-1, 0)
	case CornerSouthWest:
		return C(0, b.h-1)
	default:
		return C(b.w-1, b.h-1)
	}
}

// Tuning holds the constants of the ghost strategies.
type Tuning struct {
	Lookahead     int     // cells ahead of the player an ambusher aims at
	Shyness       float64 // shy ghosts retreat when this close to the player
	RetreatCorner Corner  // where shy ghosts retreat to
}

// DefaultTuning returns the standard ghost constants.
func DefaultTuning() Tuning {
	return Tuning{
		Lookahead:     2,
		Shyness:       8,
		RetreatCorner: CornerSouthEast,
	}
}

// NextMove picks the direction ghost should move this tick.
// Returns false when the ghost should stay put: it is not on the board,
// there is no player on the board, or its target cannot be reached.
func NextMove(b *Board, ghost *Unit, t Tuning) (Direction, bool) {
	from, ok := b.Where(ghost)
	if !ok {
		return 0, false
	}
	target, ok := Target(b, ghost, t)
	if !ok {
		return 0, false
	}
	return FirstStep(b, from, target, ghost)
}

// Target computes the cell ghost is heading for, from the current state of
// the board. Nothing is cached between calls.
func Target(b *Board, ghost *Unit, t Tuning) (Coord, bool) {
	from, ok := b.Where(ghost)
	if !ok {
		return Coord{}, false
	}
	player, ok := FindNearest(b, from, func(u *Unit) bool {
		return u.Is(CategoryPlayer)
	})
	if !ok {
		return Coord{}, false
	}
	playerAt, _ := b.Where(player)

	switch ghost.Strategy {
	case StrategyAmbush:
		return ambushPoint(b, ghost, player, playerAt, t), true

	case StrategyFlank:
		ref, ok := FindNearest(b, from, func(u *Unit) bool {
			return u != ghost && u.Is(CategoryGhost) && u.Strategy == StrategyChase
		})
		if !ok {
			return Coord{}, false
		}
		refAt, _ := b.Where(ref)
		pivot := ambushPoint(b, ghost, player, playerAt, t)
		return NearestAccessible(b, pivot.Reflect(refAt), ghost)

	case StrategyShy:
		if from.Distance(playerAt) <= t.Shyness {
			return NearestAccessible(b, t.RetreatCorner.On(b), ghost)
		}
		return playerAt, true

	default:
		return playerAt, true
	}
}

// ambushPoint projects the player's position Lookahead cells along its
// facing. Projections off the board or into walls are pulled back to the
// nearest accessible cell; if there is none, the player's own cell is used.
func ambushPoint(b *Board, ghost, player *Unit, playerAt Coord, t Tuning) Coord {
	ahead := playerAt.Step(player.Facing, t.Lookahead)
	if c, ok := NearestAccessible(b, ahead, ghost); ok {
		return c
	}
	return playerAt
}

// Package core provides the simulation engine for the pursuit game.
// This package is UI-agnostic, deterministic and has no external dependencies.
package core

// Direction is one of the four cardinal directions on the board.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in exploration order.
// Path search relies on this order for deterministic tie-breaking.
var Directions = [4]Direction{North, East, South, West}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Category classifies units for collision handling.
type Category uint8

const (
	CategoryUnit    Category = iota // generic occupant without collision rules
	CategoryPlayer                  // the controlled unit
	CategoryGhost                   // autonomous adversary
	CategoryPellet                  // consumable item
	CategoryTerrain                 // inert scenery
)

// String returns the string representation of a category.
func (c Category) String() string {
	switch c {
	case CategoryUnit:
		return "unit"
	case CategoryPlayer:
		return "player"
	case CategoryGhost:
		return "ghost"
	case CategoryPellet:
		return "pellet"
	case CategoryTerrain:
		return "terrain"
	default:
		return "unknown"
	}
}

// Strategy selects how a ghost picks its target cell.
type Strategy uint8

const (
	StrategyChase  Strategy = iota // target the player directly
	StrategyAmbush                 // target cells ahead of the player
	StrategyFlank                  // mirror a chaser through the ambush point
	StrategyShy                    // chase from afar, retreat when close
)

// Strategies lists every strategy.
var Strategies = [4]Strategy{StrategyChase, StrategyAmbush, StrategyFlank, StrategyShy}

// String returns the string representation of a strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyChase:
		return "chase"
	case StrategyAmbush:
		return "ambush"
	case StrategyFlank:
		return "flank"
	case StrategyShy:
		return "shy"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a name produced by Strategy.String back to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	for _, s := range Strategies {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

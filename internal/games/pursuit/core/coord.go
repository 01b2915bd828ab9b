package core

import (
	"fmt"
	"math"
)

// Coord represents a 2D coordinate on the board.
// X increases to the east, Y increases to the south.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the coordinate n steps away in direction d.
// The result may lie outside any board.
func (c Coord) Step(d Direction, n int) Coord {
	dx, dy := d.Delta()
	return c.Add(dx*n, dy*n)
}

// Reflect returns the point reflection of other through c (2c - other).
func (c Coord) Reflect(other Coord) Coord {
	return Coord{X: 2*c.X - other.X, Y: 2*c.Y - other.Y}
}

// Distance returns the straight-line distance to another coordinate.
func (c Coord) Distance(other Coord) float64 {
	return math.Hypot(float64(c.X-other.X), float64(c.Y-other.Y))
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

package core

import "fmt"

// UnitID identifies a unit inside a board's arena.
// The zero value means the unit has not been registered with a board yet.
type UnitID int

// Unit is anything that can occupy a cell: the player, ghosts, pellets.
// Position is owned by the Board; a unit only carries its own attributes.
type Unit struct {
	id       UnitID
	category Category

	// Facing is the direction the unit last moved (or was turned) in.
	Facing Direction

	// Strategy is meaningful for ghosts only.
	Strategy Strategy

	// Value is the worth of a pellet.
	Value int

	alive  bool
	score  int
	killer *Unit
}

// NewUnit creates an unregistered unit of the given category.
func NewUnit(cat Category) *Unit {
	return &Unit{
		category: cat,
		Facing:   East,
		alive:    true,
	}
}

// NewPlayer creates a living player facing east.
func NewPlayer() *Unit {
	return NewUnit(CategoryPlayer)
}

// NewGhost creates a ghost driven by the given strategy.
func NewGhost(s Strategy) *Unit {
	u := NewUnit(CategoryGhost)
	u.Strategy = s
	return u
}

// NewPellet creates a pellet worth value points.
func NewPellet(value int) *Unit {
	u := NewUnit(CategoryPellet)
	u.Value = value
	return u
}

// ID returns the arena identifier, or 0 if the unit was never registered.
func (u *Unit) ID() UnitID {
	return u.id
}

// Category returns the collision category of the unit.
func (u *Unit) Category() Category {
	return u.category
}

// Is reports whether the unit belongs to category cat.
func (u *Unit) Is(cat Category) bool {
	return u != nil && u.category == cat
}

// Alive reports whether the unit is still in play.
func (u *Unit) Alive() bool {
	return u.alive
}

// Kill marks the unit dead and remembers who did it.
// Only the first killer is recorded.
func (u *Unit) Kill(by *Unit) {
	if u.alive {
		u.killer = by
	}
	u.alive = false
}

// Killer returns the unit that killed this one, if any.
func (u *Unit) Killer() *Unit {
	return u.killer
}

// Score returns the points collected by a player.
func (u *Unit) Score() int {
	return u.score
}

// AddPoints adds n to the unit's score.
func (u *Unit) AddPoints(n int) {
	u.score += n
}

// String returns a debug representation of the unit.
func (u *Unit) String() string {
	if u.category == CategoryGhost {
		return fmt.Sprintf("%s#%d(%s)", u.category, u.id, u.Strategy)
	}
	return fmt.Sprintf("%s#%d", u.category, u.id)
}

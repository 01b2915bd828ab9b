package core

// PointCalculator is notified about scoring events.
// The engine decides when these are called; the implementation decides
// what they are worth.
type PointCalculator interface {
	// GhostEncounter is called when a player and a ghost meet.
	GhostEncounter(player, ghost *Unit)

	// PelletConsumed is called when a player eats a pellet.
	PelletConsumed(player, pellet *Unit)
}

// Collider resolves a unit moving onto a cell that is already occupied.
type Collider interface {
	Collide(mover, occupant *Unit)
}

// Collisions is the collision table for the game, keyed on the ordered
// pair of unit categories. Ghost strategy never matters here.
type Collisions struct {
	board  *Board
	points PointCalculator
}

// NewCollisions creates the collision table. Pellets eaten are removed from board.
func NewCollisions(board *Board, points PointCalculator) *Collisions {
	return &Collisions{board: board, points: points}
}

// Collide handles mover arriving on a cell where occupant already stands.
//
// Rules:
//   - player → ghost, ghost → player: the player dies
//   - player → pellet, pellet → player: the pellet is eaten
//   - every other pair: nothing happens, nobody is notified
func (c *Collisions) Collide(mover, occupant *Unit) {
	if mover == nil || occupant == nil {
		return
	}

	switch pair(mover.category, occupant.category) {
	case pair(CategoryPlayer, CategoryGhost):
		c.playerVersusGhost(mover, occupant)
	case pair(CategoryGhost, CategoryPlayer):
		c.playerVersusGhost(occupant, mover)
	case pair(CategoryPlayer, CategoryPellet):
		c.playerVersusPellet(mover, occupant)
	case pair(CategoryPellet, CategoryPlayer):
		c.playerVersusPellet(occupant, mover)
	}
}

// pair packs an ordered category pair into a single switchable key.
func pair(mover, occupant Category) uint16 {
	return uint16(mover)<<8 | uint16(occupant)
}

func (c *Collisions) playerVersusGhost(player, ghost *Unit) {
	if c.points != nil {
		c.points.GhostEncounter(player, ghost)
	}
	player.Kill(ghost)
}

func (c *Collisions) playerVersusPellet(player, pellet *Unit) {
	if c.board != nil {
		c.board.Remove(pellet)
	}
	if c.points != nil {
		c.points.PelletConsumed(player, pellet)
	}
}

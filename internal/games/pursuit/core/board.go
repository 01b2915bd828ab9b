package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("core: coordinates out of bounds")

	// ErrForeignUnit is returned when a unit registered with another board is placed.
	ErrForeignUnit = errors.New("core: unit belongs to another board")
)

// Cell is one board position. Its coordinate and terrain never change;
// its occupants are kept in arrival order, the last one being on top.
type Cell struct {
	Pos     Coord
	Terrain Terrain

	occupants []UnitID
}

// AccessibleTo reports whether u may enter this cell.
func (c *Cell) AccessibleTo(u *Unit) bool {
	return c.Terrain.AccessibleTo(u)
}

// Board is the fixed-size grid of cells plus the units living on it.
// Units are stored in an arena indexed by UnitID, with a reverse map from
// unit to coordinate, so moving a unit touches exactly two maps.
type Board struct {
	w     int
	h     int
	cells []Cell // row-major: index = y*w + x

	arena []*Unit          // arena[id-1]
	where map[UnitID]Coord // placed units only
}

// NewBoard creates a board from a column-major terrain grid: terrain[x][y].
// All columns must have the same, non-zero height.
func NewBoard(terrain [][]Terrain) (*Board, error) {
	w := len(terrain)
	if w == 0 {
		return nil, fmt.Errorf("core: board needs at least one column")
	}
	h := len(terrain[0])
	if h == 0 {
		return nil, fmt.Errorf("core: board needs at least one row")
	}
	for x, col := range terrain {
		if len(col) != h {
			return nil, fmt.Errorf("core: column %d has height %d, expected %d", x, len(col), h)
		}
	}

	b := &Board{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
		where: make(map[UnitID]Coord),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.cells[y*w+x] = Cell{Pos: C(x, y), Terrain: terrain[x][y]}
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

// CellAt returns the cell at (x, y), or ErrOutOfBounds.
func (b *Board) CellAt(x, y int) (*Cell, error) {
	c := C(x, y)
	if !b.InBounds(c) {
		return nil, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, c, b.w, b.h)
	}
	return b.cell(c), nil
}

func (b *Board) cell(c Coord) *Cell {
	return &b.cells[c.Y*b.w+c.X]
}

// Neighbor returns the adjacent coordinate in direction d.
// Returns false at the board edge; the board never wraps.
func (b *Board) Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.Step(d, 1)
	if !b.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}

// Accessible reports whether u may enter the cell at c.
// Out-of-bounds coordinates are never accessible.
func (b *Board) Accessible(c Coord, u *Unit) bool {
	if !b.InBounds(c) {
		return false
	}
	return b.cell(c).AccessibleTo(u)
}

// Register adds u to the arena without placing it.
// Registering the same unit twice is a no-op.
func (b *Board) Register(u *Unit) error {
	if u.id != 0 {
		if !b.owns(u) {
			return fmt.Errorf("%w: %s", ErrForeignUnit, u)
		}
		return nil
	}
	b.arena = append(b.arena, u)
	u.id = UnitID(len(b.arena))
	return nil
}

func (b *Board) owns(u *Unit) bool {
	i := int(u.id) - 1
	return i >= 0 && i < len(b.arena) && b.arena[i] == u
}

// Place moves u onto the cell at c, detaching it from its previous cell first.
// Accessibility is not checked: callers decide whether entering is allowed.
func (b *Board) Place(u *Unit, c Coord) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, c, b.w, b.h)
	}
	if err := b.Register(u); err != nil {
		return err
	}
	b.Remove(u)
	cell := b.cell(c)
	cell.occupants = append(cell.occupants, u.id)
	b.where[u.id] = c
	return nil
}

// Remove detaches u from its cell. The unit stays registered.
// No-op if the unit is not placed.
func (b *Board) Remove(u *Unit) {
	if u == nil || !b.owns(u) {
		return
	}
	at, ok := b.where[u.id]
	if !ok {
		return
	}
	cell := b.cell(at)
	for i, id := range cell.occupants {
		if id == u.id {
			cell.occupants = append(cell.occupants[:i], cell.occupants[i+1:]...)
			break
		}
	}
	delete(b.where, u.id)
}

// Where returns the coordinate of u, or false if it is not on this board.
func (b *Board) Where(u *Unit) (Coord, bool) {
	if u == nil || !b.owns(u) {
		return Coord{}, false
	}
	c, ok := b.where[u.id]
	return c, ok
}

// Occupants returns the units on the cell at c in arrival order.
// The returned slice is a copy.
func (b *Board) Occupants(c Coord) []*Unit {
	if !b.InBounds(c) {
		return nil
	}
	cell := b.cell(c)
	units := make([]*Unit, len(cell.occupants))
	for i, id := range cell.occupants {
		units[i] = b.arena[id-1]
	}
	return units
}

// Top returns the last unit to arrive on c, if any.
func (b *Board) Top(c Coord) (*Unit, bool) {
	if !b.InBounds(c) {
		return nil, false
	}
	cell := b.cell(c)
	if len(cell.occupants) == 0 {
		return nil, false
	}
	return b.arena[cell.occupants[len(cell.occupants)-1]-1], true
}

// Units returns the registered units of category cat in registration order,
// placed or not.
func (b *Board) Units(cat Category) []*Unit {
	var units []*Unit
	for _, u := range b.arena {
		if u.category == cat {
			units = append(units, u)
		}
	}
	return units
}

// Count returns the number of placed units of category cat.
func (b *Board) Count(cat Category) int {
	n := 0
	for id := range b.where {
		if b.arena[id-1].category == cat {
			n++
		}
	}
	return n
}

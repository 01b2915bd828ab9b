package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
)

func TestNewBoardRejectsBadGrids(t *testing.T) {
	tests := []struct {
		name    string
		terrain [][]core.Terrain
	}{
		{"nil", nil},
		{"no rows", [][]core.Terrain{{}}},
		{"ragged", [][]core.Terrain{{core.TerrainGround, core.TerrainGround}, {core.TerrainGround}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.NewBoard(tc.terrain); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	b := newBoard(t,
		"#..",
		"..#",
	)

	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", b.Width(), b.Height())
	}

	cell, err := b.CellAt(2, 1)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	if cell.Pos != core.C(2, 1) || cell.Terrain != core.TerrainWall {
		t.Errorf("unexpected cell %v %s", cell.Pos, cell.Terrain)
	}

	for _, c := range []core.Coord{core.C(-1, 0), core.C(3, 0), core.C(0, 2), core.C(0, -1)} {
		if _, err := b.CellAt(c.X, c.Y); !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("CellAt%v: expected ErrOutOfBounds, got %v", c, err)
		}
	}
}

func TestNeighborNeverWraps(t *testing.T) {
	b := newBoard(t,
		"...",
		"...",
	)

	tests := []struct {
		from Coord
		dir  core.Direction
		want Coord
		ok   bool
	}{
		{core.C(1, 0), core.North, Coord{}, false},
		{core.C(1, 0), core.South, core.C(1, 1), true},
		{core.C(0, 0), core.West, Coord{}, false},
		{core.C(2, 1), core.East, Coord{}, false},
		{core.C(2, 1), core.West, core.C(1, 1), true},
		{core.C(1, 1), core.South, Coord{}, false},
	}
	for _, tc := range tests {
		got, ok := b.Neighbor(tc.from, tc.dir)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Neighbor(%v, %s) = %v, %v; expected %v, %v", tc.from, tc.dir, got, ok, tc.want, tc.ok)
		}
	}
}

// Coord is shorthand for table literals.
type Coord = core.Coord

func TestAccessible(t *testing.T) {
	b := newBoard(t, "#.")
	p := core.NewPlayer()

	if b.Accessible(core.C(0, 0), p) {
		t.Error("wall should not be accessible")
	}
	if !b.Accessible(core.C(1, 0), p) {
		t.Error("ground should be accessible")
	}
	if b.Accessible(core.C(2, 0), p) {
		t.Error("off-board should not be accessible")
	}
	if !b.Accessible(core.C(1, 0), nil) {
		t.Error("nil unit should get the ground answer")
	}
}

func TestPlaceMovesUnitAtomically(t *testing.T) {
	b := newBoard(t, "....")
	p := place(t, b, core.NewPlayer(), 0, 0)

	place(t, b, p, 2, 0)

	if at, ok := b.Where(p); !ok || at != core.C(2, 0) {
		t.Errorf("expected player at (2,0), got %v %v", at, ok)
	}
	if n := len(b.Occupants(core.C(0, 0))); n != 0 {
		t.Errorf("old cell should be empty, has %d", n)
	}
	if n := len(b.Occupants(core.C(2, 0))); n != 1 {
		t.Errorf("new cell should hold 1 unit, has %d", n)
	}
}

func TestOccupantsArrivalOrder(t *testing.T) {
	b := newBoard(t, "..")
	pellet := place(t, b, core.NewPellet(10), 1, 0)
	ghost := place(t, b, core.NewGhost(core.StrategyChase), 1, 0)

	occ := b.Occupants(core.C(1, 0))
	if len(occ) != 2 || occ[0] != pellet || occ[1] != ghost {
		t.Fatalf("unexpected occupants %v", occ)
	}
	top, ok := b.Top(core.C(1, 0))
	if !ok || top != ghost {
		t.Errorf("expected ghost on top, got %v", top)
	}

	// Mutating the copy must not affect the board.
	occ[0] = nil
	if b.Occupants(core.C(1, 0))[0] != pellet {
		t.Error("Occupants should return a copy")
	}

	b.Remove(ghost)
	if top, _ := b.Top(core.C(1, 0)); top != pellet {
		t.Errorf("expected pellet on top after removal, got %v", top)
	}
	if _, ok := b.Where(ghost); ok {
		t.Error("removed ghost should have no position")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	b := newBoard(t, ".")
	p := core.NewPlayer()

	b.Remove(p)
	b.Remove(nil)
	place(t, b, p, 0, 0)
	b.Remove(p)
	b.Remove(p)

	if b.Count(core.CategoryPlayer) != 0 {
		t.Error("player should be gone")
	}
	if len(b.Units(core.CategoryPlayer)) != 1 {
		t.Error("player should stay registered")
	}
}

func TestPlaceErrors(t *testing.T) {
	b := newBoard(t, "..")
	other := newBoard(t, "..")
	p := core.NewPlayer()

	if err := b.Place(p, core.C(5, 5)); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	place(t, b, p, 0, 0)
	if err := other.Place(p, core.C(0, 0)); !errors.Is(err, core.ErrForeignUnit) {
		t.Errorf("expected ErrForeignUnit, got %v", err)
	}
	if _, ok := other.Where(p); ok {
		t.Error("foreign unit should have no position on the other board")
	}
}

func TestCountAndUnits(t *testing.T) {
	b := newBoard(t, "....")
	place(t, b, core.NewPellet(10), 0, 0)
	place(t, b, core.NewPellet(10), 1, 0)
	g1 := place(t, b, core.NewGhost(core.StrategyChase), 2, 0)
	g2 := place(t, b, core.NewGhost(core.StrategyShy), 3, 0)
	unplaced := core.NewPellet(10)
	if err := b.Register(unplaced); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if n := b.Count(core.CategoryPellet); n != 2 {
		t.Errorf("expected 2 placed pellets, got %d", n)
	}
	if n := len(b.Units(core.CategoryPellet)); n != 3 {
		t.Errorf("expected 3 registered pellets, got %d", n)
	}
	ghosts := b.Units(core.CategoryGhost)
	if len(ghosts) != 2 || ghosts[0] != g1 || ghosts[1] != g2 {
		t.Errorf("ghosts should be in registration order, got %v", ghosts)
	}
}

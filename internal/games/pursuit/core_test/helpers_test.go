package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
)

// newBoard builds a board from text rows: '#' is a wall, anything else ground.
func newBoard(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	w, h := len(rows[0]), len(rows)
	terrain := make([][]core.Terrain, w)
	for x := range terrain {
		terrain[x] = make([]core.Terrain, h)
		for y := range terrain[x] {
			if rows[y][x] == '#' {
				terrain[x][y] = core.TerrainWall
			} else {
				terrain[x][y] = core.TerrainGround
			}
		}
	}
	b, err := core.NewBoard(terrain)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

// place puts u on b at (x, y) and returns it.
func place(t *testing.T, b *core.Board, u *core.Unit, x, y int) *core.Unit {
	t.Helper()
	if err := b.Place(u, core.C(x, y)); err != nil {
		t.Fatalf("Place(%s, (%d,%d)) failed: %v", u, x, y, err)
	}
	return u
}

// countingPoints records every scoring notification.
type countingPoints struct {
	encounters int
	pellets    int
	lastPellet *core.Unit
}

func (p *countingPoints) GhostEncounter(player, ghost *core.Unit) {
	p.encounters++
}

func (p *countingPoints) PelletConsumed(player, pellet *core.Unit) {
	p.pellets++
	p.lastPellet = pellet
	player.AddPoints(pellet.Value)
}

func (p *countingPoints) total() int {
	return p.encounters + p.pellets
}

// recordingObserver counts level outcomes.
type recordingObserver struct {
	won  int
	lost int
}

func (o *recordingObserver) LevelWon()  { o.won++ }
func (o *recordingObserver) LevelLost() { o.lost++ }

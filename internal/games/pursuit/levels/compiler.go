// Package levels turns text maps into playable boards.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels/formats"
)

// Result is a compiled map, ready to become a level.
type Result struct {
	Board  *core.Board
	Ghosts []*core.Unit // in map reading order
	Starts []core.Coord // player start positions in map reading order
}

// NewLevel wires the compiled board into a level with the standard
// collision table.
func (r *Result) NewLevel(points core.PointCalculator, tuning core.Tuning) *core.Level {
	collisions := core.NewCollisions(r.Board, points)
	return core.NewLevel(r.Board, r.Ghosts, r.Starts, collisions, tuning)
}

// Compiler builds boards from character maps. Terrain and units are made by
// the factories; the compiler only decides what goes where.
type Compiler struct {
	boards BoardFactory
	units  UnitFactory
	legend Legend
}

// NewCompiler creates a compiler using the default legend.
func NewCompiler(boards BoardFactory, units UnitFactory) *Compiler {
	return &Compiler{
		boards: boards,
		units:  units,
		legend: DefaultLegend(),
	}
}

// WithLegend replaces the character legend.
func (c *Compiler) WithLegend(l Legend) *Compiler {
	c.legend = l
	return c
}

// Compile builds a board from rows of equal width.
func (c *Compiler) Compile(rows []string) (*Result, error) {
	if rows == nil {
		return nil, configErrorf("no map source")
	}
	grid := make([][]rune, len(rows))
	for i, row := range rows {
		grid[i] = []rune(row)
	}
	return c.CompileGrid(grid)
}

// Parse reads a map from r. Lines may end in "\n", "\r\n" or "\r".
// Read failures are returned as-is (wrapped), not as ConfigurationError.
func (c *Compiler) Parse(r io.Reader) (*Result, error) {
	if r == nil {
		return nil, configErrorf("no map source")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("levels: reading map: %w", err)
	}
	return c.Compile(formats.Lines(data))
}

// ParseResource opens name in fsys and compiles it.
// A missing resource is a ConfigurationError; any other failure to open or
// read it is an I/O error.
func (c *Compiler) ParseResource(fsys fs.FS, name string) (*Result, error) {
	if fsys == nil || name == "" {
		return nil, configErrorf("no map resource given")
	}
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, configErrorf("map resource %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: opening map %s: %w", name, err)
	}
	defer f.Close()
	return c.Parse(f)
}

// placement is a unit waiting for the board to exist.
type placement struct {
	unit *core.Unit
	at   core.Coord
}

// CompileGrid builds a board from a row-major character grid: grid[y][x].
// The whole grid is validated before any factory is called, so a bad map
// never yields a partial board.
func (c *Compiler) CompileGrid(grid [][]rune) (*Result, error) {
	if err := c.validate(grid); err != nil {
		return nil, err
	}

	h := len(grid)
	w := len(grid[0])
	terrain := make([][]core.Terrain, w)
	for x := range terrain {
		terrain[x] = make([]core.Terrain, h)
	}

	result := &Result{}
	var pending []placement

	for y, row := range grid {
		for x, ch := range row {
			tile := c.legend[ch]
			if tile.Wall {
				terrain[x][y] = c.boards.CreateWall()
			} else {
				terrain[x][y] = c.boards.CreateGround()
			}

			at := core.C(x, y)
			switch tile.Occupant {
			case OccupantPellet:
				pending = append(pending, placement{unit: c.units.CreatePellet(), at: at})
			case OccupantGhost:
				ghost := c.units.CreateGhost(tile.Strategy)
				pending = append(pending, placement{unit: ghost, at: at})
				result.Ghosts = append(result.Ghosts, ghost)
			case OccupantStart:
				result.Starts = append(result.Starts, at)
			}
		}
	}

	board, err := core.NewBoard(terrain)
	if err != nil {
		return nil, fmt.Errorf("levels: building board: %w", err)
	}
	for _, p := range pending {
		if err := board.Place(p.unit, p.at); err != nil {
			return nil, fmt.Errorf("levels: placing %s: %w", p.unit, err)
		}
	}
	result.Board = board
	return result, nil
}

func (c *Compiler) validate(grid [][]rune) error {
	if grid == nil {
		return configErrorf("no map source")
	}
	if len(grid) == 0 {
		return configErrorf("map has no rows")
	}
	width := len(grid[0])
	for y, row := range grid {
		if len(row) == 0 {
			return configErrorf("row %d is empty", y)
		}
		if len(row) != width {
			return configErrorf("row %d has width %d, expected %d", y, len(row), width)
		}
	}
	for y, row := range grid {
		for x, ch := range row {
			if _, ok := c.legend[ch]; !ok {
				return &ConfigurationError{
					Reason: "unknown character",
					Char:   ch,
					Pos:    core.C(x, y),
					HasPos: true,
				}
			}
		}
	}
	return nil
}

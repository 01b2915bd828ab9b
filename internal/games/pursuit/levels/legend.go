package levels

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
)

// Occupant is what, if anything, a map character puts on its cell.
type Occupant uint8

const (
	OccupantNone Occupant = iota
	OccupantPellet
	OccupantStart // player start position; nothing is created
	OccupantGhost
)

// Tile is the meaning of one map character.
type Tile struct {
	Wall     bool
	Occupant Occupant
	Strategy core.Strategy // for OccupantGhost
}

// Legend maps characters to tiles.
type Legend map[rune]Tile

// DefaultLegend returns the standard map characters.
func DefaultLegend() Legend {
	return Legend{
		' ': {},
		'#': {Wall: true},
		'.': {Occupant: OccupantPellet},
		'P': {Occupant: OccupantStart},
		'A': {Occupant: OccupantGhost, Strategy: core.StrategyChase},
		'K': {Occupant: OccupantGhost, Strategy: core.StrategyAmbush},
		'I': {Occupant: OccupantGhost, Strategy: core.StrategyFlank},
		'C': {Occupant: OccupantGhost, Strategy: core.StrategyShy},
	}
}

// ParseLegend builds a legend from config entries such as
// {"#": "wall", ".": "pellet", "A": "ghost:chase"}.
// Entries override the default legend; unknown tile names are an error.
func ParseLegend(entries map[string]string) (Legend, error) {
	legend := DefaultLegend()
	for key, value := range entries {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("levels: legend key %q must be a single character", key)
		}
		ch, _ := utf8.DecodeRuneInString(key)
		tile, err := parseTile(value)
		if err != nil {
			return nil, fmt.Errorf("levels: legend entry %q: %w", key, err)
		}
		legend[ch] = tile
	}
	return legend, nil
}

func parseTile(value string) (Tile, error) {
	name, arg, _ := strings.Cut(value, ":")
	switch name {
	case "ground":
		return Tile{}, nil
	case "wall":
		return Tile{Wall: true}, nil
	case "pellet":
		return Tile{Occupant: OccupantPellet}, nil
	case "start":
		return Tile{Occupant: OccupantStart}, nil
	case "ghost":
		s, ok := core.ParseStrategy(arg)
		if !ok {
			return Tile{}, fmt.Errorf("unknown ghost strategy %q", arg)
		}
		return Tile{Occupant: OccupantGhost, Strategy: s}, nil
	default:
		return Tile{}, fmt.Errorf("unknown tile %q", value)
	}
}

// Glyph returns the first character mapped to an equivalent tile, used when
// drawing a board back to text. Ties resolve to the lowest rune.
func (l Legend) Glyph(t Tile) (rune, bool) {
	var best rune
	found := false
	for ch, tile := range l {
		if tile == t && (!found || ch < best) {
			best, found = ch, true
		}
	}
	return best, found
}

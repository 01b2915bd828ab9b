package pursuit

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels"
)

const hudHeight = 2

// glyph is how one board cell is drawn.
type glyph struct {
	r rune
	c platformcore.Color
}

var ghostColors = map[core.Strategy]platformcore.Color{
	core.StrategyChase:  platformcore.ColorRed,
	core.StrategyAmbush: platformcore.ColorPink,
	core.StrategyFlank:  platformcore.ColorCyan,
	core.StrategyShy:    platformcore.ColorOrange,
}

// Glyphs are the runes a board is drawn with. The player has no map
// character of its own and is always drawn as '@', or 'X' once caught.
type Glyphs struct {
	Wall   rune
	Ground rune
	Pellet rune
	Ghosts map[core.Strategy]rune
}

// GlyphsFor takes the runes from legend l, so that a drawn board reads back
// as the same map under l. Tiles l has no character for fall back to the
// default legend.
func GlyphsFor(l levels.Legend) Glyphs {
	fallback := levels.DefaultLegend()
	pick := func(t levels.Tile) rune {
		if r, ok := l.Glyph(t); ok {
			return r
		}
		r, _ := fallback.Glyph(t)
		return r
	}

	g := Glyphs{
		Wall:   pick(levels.Tile{Wall: true}),
		Ground: pick(levels.Tile{}),
		Pellet: pick(levels.Tile{Occupant: levels.OccupantPellet}),
		Ghosts: make(map[core.Strategy]rune, len(core.Strategies)),
	}
	for _, s := range core.Strategies {
		g.Ghosts[s] = pick(levels.Tile{Occupant: levels.OccupantGhost, Strategy: s})
	}
	return g
}

// cellGlyph picks what to draw at c. The player is drawn over ghosts and
// ghosts over pellets.
func (gl Glyphs) cellGlyph(b *core.Board, c core.Coord) glyph {
	var best *core.Unit
	rank := 0
	for _, u := range b.Occupants(c) {
		r := drawRank(u)
		if r > rank {
			best, rank = u, r
		}
	}

	switch {
	case best.Is(core.CategoryPlayer):
		if !best.Alive() {
			return glyph{'X', platformcore.ColorBrightRed}
		}
		return glyph{'@', platformcore.ColorBrightYellow}
	case best.Is(core.CategoryGhost):
		return glyph{gl.Ghosts[best.Strategy], ghostColors[best.Strategy]}
	case best.Is(core.CategoryPellet):
		return glyph{gl.Pellet, platformcore.ColorWhite}
	}

	if !b.Accessible(c, nil) {
		return glyph{gl.Wall, platformcore.ColorBlue}
	}
	return glyph{gl.Ground, platformcore.ColorDefault}
}

func drawRank(u *core.Unit) int {
	switch u.Category() {
	case core.CategoryPlayer:
		return 3
	case core.CategoryGhost:
		return 2
	case core.CategoryPellet:
		return 1
	default:
		return 0
	}
}

// DrawBoard draws b with its top-left corner at (ox, oy).
func DrawBoard(dst *platformcore.Screen, b *core.Board, gl Glyphs, ox, oy int) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			g := gl.cellGlyph(b, core.C(x, y))
			dst.SetWithColor(ox+x, oy+y, g.r, g.c)
		}
	}
}

// BoardText renders b as plain text rows using the characters of legend l.
// A nil legend means the default one.
func BoardText(b *core.Board, l levels.Legend) string {
	s := platformcore.NewScreen(b.Width(), b.Height())
	DrawBoard(s, b, GlyphsFor(l), 0, 0)
	return s.String()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.level == nil {
		msg := "Level unavailable"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, platformcore.ColorRed)
		return
	}

	b := g.level.Board()
	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if !area.Fits(b.Width(), b.Height()) {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", platformcore.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", b.Width(), b.Height()+hudHeight), platformcore.ColorGray)
		return
	}

	at := area.CenterIn(b.Width(), b.Height())
	DrawBoard(dst, b, g.glyphs, at.X, at.Y)

	mid := at.Y + at.H/2
	switch state := g.State(); {
	case state.Won:
		dst.DrawTextCentered(mid, " Cleared! Press R to play again ", platformcore.ColorBrightYellow)
	case state.GameOver:
		dst.DrawTextCentered(mid, " Caught! Press R to restart ", platformcore.ColorBrightRed)
	case state.Paused:
		dst.DrawTextCentered(mid, " Paused ", platformcore.ColorYellow)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.session != nil {
		hud += fmt.Sprintf(" | Score: %d | Pellets: %d | Turn: %d",
			g.session.Player().Score(), g.level.RemainingPellets(), g.turns)
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)
}

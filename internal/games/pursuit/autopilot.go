package pursuit

import (
	platformcore "github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
)

// AutoPilot drives the player for headless runs: it heads for the nearest
// reachable pellet and sidesteps cells next to a ghost when it can.
type AutoPilot struct{}

// Next returns the input for the player's next turn.
func (AutoPilot) Next(b *core.Board, player *core.Unit) platformcore.InputFrame {
	d, ok := autoDirection(b, player)
	if !ok {
		return platformcore.FrameOf(platformcore.ActionWait)
	}
	return platformcore.FrameOf(actionFor(d))
}

func autoDirection(b *core.Board, player *core.Unit) (core.Direction, bool) {
	at, ok := b.Where(player)
	if !ok {
		return 0, false
	}

	preferred, hasPreferred := stepToNearestPellet(b, at, player)
	if hasPreferred {
		if next, _ := b.Neighbor(at, preferred); !threatened(b, next) {
			return preferred, true
		}
	}

	for _, d := range core.Directions {
		next, ok := b.Neighbor(at, d)
		if ok && b.Accessible(next, player) && !threatened(b, next) {
			return d, true
		}
	}
	return preferred, hasPreferred
}

// stepToNearestPellet takes the first step of the shortest route to any pellet.
func stepToNearestPellet(b *core.Board, at core.Coord, player *core.Unit) (core.Direction, bool) {
	var (
		best    []core.Direction
		haveAny bool
	)
	for _, pellet := range b.Units(core.CategoryPellet) {
		c, ok := b.Where(pellet)
		if !ok {
			continue
		}
		path, ok := core.ShortestPath(b, at, c, player)
		if !ok || len(path) == 0 {
			continue
		}
		if !haveAny || len(path) < len(best) {
			best, haveAny = path, true
		}
	}
	if !haveAny {
		return 0, false
	}
	return best[0], true
}

// threatened reports whether a ghost stands on c or next to it.
func threatened(b *core.Board, c core.Coord) bool {
	if hasGhost(b, c) {
		return true
	}
	for _, d := range core.Directions {
		if n, ok := b.Neighbor(c, d); ok && hasGhost(b, n) {
			return true
		}
	}
	return false
}

func hasGhost(b *core.Board, c core.Coord) bool {
	for _, u := range b.Occupants(c) {
		if u.Is(core.CategoryGhost) {
			return true
		}
	}
	return false
}

func actionFor(d core.Direction) platformcore.Action {
	switch d {
	case core.North:
		return platformcore.ActionUp
	case core.East:
		return platformcore.ActionRight
	case core.South:
		return platformcore.ActionDown
	default:
		return platformcore.ActionLeft
	}
}

// Play drives g with the autopilot until the session ends or maxTurns
// turns have been played. g must have been Reset.
func Play(g *Game, maxTurns int) Snapshot {
	var pilot AutoPilot
	for g.Turns() < maxTurns {
		session := g.Session()
		if session == nil || !session.IsInProgress() {
			break
		}
		g.Step(pilot.Next(g.Level().Board(), session.Player()))
	}
	return g.Snapshot()
}

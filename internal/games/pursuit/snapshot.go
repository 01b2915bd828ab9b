package pursuit

import (
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

// Snapshot captures the game state for determinism testing and reporting.
type Snapshot struct {
	LevelID   string
	Turns     int
	Ticks     uint64
	Score     int
	Pellets   int // pellets left on the board
	Eaten     int
	Placed    bool // player is on the board; PlayerX and PlayerY are -1 otherwise
	PlayerX   int
	PlayerY   int
	Facing    core.Direction
	Alive     bool
	State     core.State
	Outcome   core.Outcome
	CaughtBy  string // strategy of the ghost that caught the player
	GhostsPos []core.Coord
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		LevelID: g.def.ID,
		Turns:   g.turns,
		PlayerX: -1,
		PlayerY: -1,
	}
	if g.session == nil {
		return s
	}

	player := g.session.Player()
	b := g.level.Board()

	s.Ticks = g.session.Ticks()
	s.Score = player.Score()
	s.Pellets = g.level.RemainingPellets()
	s.Eaten = g.points.Pellets
	if at, ok := b.Where(player); ok {
		s.Placed = true
		s.PlayerX, s.PlayerY = at.X, at.Y
	}
	s.Facing = player.Facing
	s.Alive = player.Alive()
	s.State = g.session.State()
	s.Outcome = g.session.Outcome()
	if killer := player.Killer(); killer != nil {
		s.CaughtBy = killer.Strategy.String()
	}
	for _, ghost := range g.level.Ghosts() {
		if c, ok := b.Where(ghost); ok {
			s.GhostsPos = append(s.GhostsPos, c)
		}
	}
	return s
}

// Record converts the snapshot to a stored session result.
func (s Snapshot) Record() storage.Result {
	return storage.Result{
		LevelID:  s.LevelID,
		Score:    s.Score,
		Outcome:  s.Outcome.String(),
		Turns:    s.Turns,
		Ticks:    int64(s.Ticks),
		CaughtBy: s.CaughtBy,
	}
}

// Record returns the result of the current session.
func (g *Game) Record() storage.Result {
	return g.Snapshot().Record()
}

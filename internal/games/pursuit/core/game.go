package core

// World is what a game session needs from its level.
// *Level implements it.
type World interface {
	RegisterPlayer(p *Unit)
	AddObserver(o LevelObserver)
	Start()
	Stop()
	Move(u *Unit, d Direction)
	Tick()
	IsAnyPlayerAlive() bool
	RemainingPellets() int
}

// State is the lifecycle state of a session.
type State uint8

const (
	StateCreated    State = iota // assembled, never started
	StateInProgress              // running
	StateStopped                 // finished or aborted; terminal
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateInProgress:
		return "in_progress"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Outcome tells how a stopped session ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota // not decided (still running, or stopped by hand)
	OutcomeWon                 // every pellet eaten
	OutcomeLost                // the player died
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Game is one single-player session: Created → InProgress → Stopped.
// The driver calls Move for the player and Tick for the ghosts.
type Game struct {
	player  *Unit
	world   World
	state   State
	outcome Outcome
	ticks   uint64
}

// NewGame registers player in world and returns a session in StateCreated.
func NewGame(player *Unit, world World) *Game {
	g := &Game{
		player: player,
		world:  world,
	}
	world.RegisterPlayer(player)
	world.AddObserver(g)
	return g
}

// Player returns the session's player.
func (g *Game) Player() *Unit {
	return g.player
}

// Start begins the session. Starting a running session does nothing.
// If the player is already dead or no pellets remain the session goes
// straight to StateStopped. A stopped session stays stopped.
func (g *Game) Start() {
	if g.state != StateCreated {
		return
	}
	if !g.world.IsAnyPlayerAlive() || g.world.RemainingPellets() == 0 {
		g.finish()
		return
	}
	g.state = StateInProgress
	g.world.Start()
}

// Stop ends the session from any state.
func (g *Game) Stop() {
	if g.state == StateInProgress {
		g.world.Stop()
	}
	g.state = StateStopped
}

// IsInProgress reports whether the session is running.
func (g *Game) IsInProgress() bool {
	return g.state == StateInProgress
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Outcome returns how the session ended, or OutcomeNone.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Ticks returns the number of ghost ticks played.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Move moves the player one cell, if the session is running.
func (g *Game) Move(d Direction) {
	if !g.IsInProgress() {
		return
	}
	g.world.Move(g.player, d)
	g.check()
}

// Tick advances the ghosts by one step, if the session is running.
func (g *Game) Tick() {
	if !g.IsInProgress() {
		return
	}
	g.world.Tick()
	g.ticks++
	g.check()
}

// LevelWon implements LevelObserver.
func (g *Game) LevelWon() {
	g.finish()
}

// LevelLost implements LevelObserver.
func (g *Game) LevelLost() {
	g.finish()
}

// check stops the session once it is decided.
func (g *Game) check() {
	if g.state != StateStopped && (!g.world.IsAnyPlayerAlive() || g.world.RemainingPellets() == 0) {
		g.finish()
	}
}

func (g *Game) finish() {
	switch {
	case !g.world.IsAnyPlayerAlive():
		g.outcome = OutcomeLost
	case g.world.RemainingPellets() == 0:
		g.outcome = OutcomeWon
	}
	g.Stop()
}

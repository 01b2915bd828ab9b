package core

// LevelObserver is told when a level is decided.
// Each method is called at most once per observer.
type LevelObserver interface {
	LevelWon()
	LevelLost()
}

// Level is the playing field of one session: the board, its ghosts, the
// player start positions and the collision rules.
//
// All mutation happens on the caller's goroutine; a Level is not safe for
// concurrent use.
type Level struct {
	board      *Board
	ghosts     []*Unit
	starts     []Coord
	collisions Collider
	tuning     Tuning

	players    []*Unit
	observers  []LevelObserver
	inProgress bool
	decided    bool
}

// NewLevel assembles a level. Ghosts must already be on the board.
func NewLevel(board *Board, ghosts []*Unit, starts []Coord, collisions Collider, tuning Tuning) *Level {
	return &Level{
		board:      board,
		ghosts:     ghosts,
		starts:     starts,
		collisions: collisions,
		tuning:     tuning,
	}
}

// Board returns the level's board.
func (l *Level) Board() *Board {
	return l.board
}

// Ghosts returns the ghosts of the level.
func (l *Level) Ghosts() []*Unit {
	return l.ghosts
}

// Players returns the registered players.
func (l *Level) Players() []*Unit {
	return l.players
}

// RegisterPlayer places p on the next start position, cycling through them
// as more players join. Registering a player twice has no effect.
// Without start positions the player is registered but not placed.
func (l *Level) RegisterPlayer(p *Unit) {
	for _, existing := range l.players {
		if existing == p {
			return
		}
	}
	if len(l.starts) == 0 {
		if err := l.board.Register(p); err == nil {
			l.players = append(l.players, p)
		}
		return
	}
	start := l.starts[len(l.players)%len(l.starts)]
	if err := l.board.Place(p, start); err != nil {
		return
	}
	l.players = append(l.players, p)
}

// AddObserver subscribes o to level outcomes. Duplicates are ignored.
func (l *Level) AddObserver(o LevelObserver) {
	for _, existing := range l.observers {
		if existing == o {
			return
		}
	}
	l.observers = append(l.observers, o)
}

// Start lets units move.
func (l *Level) Start() {
	l.inProgress = true
	l.updateObservers()
}

// Stop freezes the level.
func (l *Level) Stop() {
	l.inProgress = false
}

// IsInProgress reports whether units may move.
func (l *Level) IsInProgress() bool {
	return l.inProgress
}

// Move turns u towards d and, if the neighbouring cell is accessible, moves
// it there. The mover then collides with every unit that was already on the
// destination, in arrival order. Does nothing while the level is stopped.
func (l *Level) Move(u *Unit, d Direction) {
	if !l.inProgress {
		return
	}
	at, ok := l.board.Where(u)
	if !ok {
		return
	}
	u.Facing = d

	dest, ok := l.board.Neighbor(at, d)
	if !ok || !l.board.Accessible(dest, u) {
		return
	}

	occupants := l.board.Occupants(dest)
	if err := l.board.Place(u, dest); err != nil {
		return
	}
	for _, occ := range occupants {
		l.collisions.Collide(u, occ)
	}
	l.updateObservers()
}

// Tick lets every ghost take one step, in ghost order. Each ghost sees the
// board as left by the ghosts before it.
func (l *Level) Tick() {
	for _, g := range l.ghosts {
		if !l.inProgress {
			return
		}
		if d, ok := NextMove(l.board, g, l.tuning); ok {
			l.Move(g, d)
		}
	}
}

// IsAnyPlayerAlive reports whether at least one registered player lives.
func (l *Level) IsAnyPlayerAlive() bool {
	for _, p := range l.players {
		if p.Alive() {
			return true
		}
	}
	return false
}

// RemainingPellets returns the number of pellets still on the board.
func (l *Level) RemainingPellets() int {
	return l.board.Count(CategoryPellet)
}

func (l *Level) updateObservers() {
	if l.decided {
		return
	}
	switch {
	case !l.IsAnyPlayerAlive():
		l.decided = true
		for _, o := range l.observers {
			o.LevelLost()
		}
	case l.RemainingPellets() == 0:
		l.decided = true
		for _, o := range l.observers {
			o.LevelWon()
		}
	}
}

// Package pursuit provides the grid pursuit game for the terminal platform:
// one player clears a maze of pellets while four kinds of ghosts hunt it.
package pursuit

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	platformcore "github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels"
)

// Game implements registry.Game for one level.
// Every accepted keypress is one player turn; ghosts step every
// Ghosts.MoveEvery turns.
type Game struct {
	def     levels.Definition
	cfg     config.PursuitConfig
	legend  levels.Legend
	glyphs  Glyphs
	factory levels.Factory
	logger  *log.Logger

	level   *core.Level
	session *core.Game
	points  *Points

	turns   int
	paused  bool
	err     error
	logged  bool
	screenW int
	screenH int
}

// New creates a game for the level definition using the default factory.
func New(def levels.Definition, cfg config.PursuitConfig, logger *log.Logger) (*Game, error) {
	return NewWithFactory(def, cfg, levels.NewDefaultFactory(cfg.Points.Pellet), logger)
}

// NewWithFactory creates a game whose terrain, ghosts, pellets and player
// all come from factory. The level is compiled once here so that a broken
// map is reported before play starts.
func NewWithFactory(def levels.Definition, cfg config.PursuitConfig, factory levels.Factory, logger *log.Logger) (*Game, error) {
	if factory == nil {
		return nil, fmt.Errorf("pursuit: level %s: no factory", def.ID)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	legend, err := levels.ParseLegend(cfg.Legend)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		def:     def,
		cfg:     cfg,
		legend:  legend,
		glyphs:  GlyphsFor(legend),
		factory: factory,
		logger:  logger.With("level", def.ID),
	}
	if _, err := g.compile(); err != nil {
		return nil, err
	}
	return g, nil
}

// fresh returns an unstarted game for the same level and settings.
func (g *Game) fresh() *Game {
	return &Game{
		def:     g.def,
		cfg:     g.cfg,
		legend:  g.legend,
		glyphs:  g.glyphs,
		factory: g.factory,
		logger:  g.logger,
	}
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.def.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.def.Name
}

func (g *Game) compile() (*levels.Result, error) {
	compiler := levels.NewCompiler(g.factory, g.factory).WithLegend(g.legend)
	return g.def.Compile(compiler)
}

// Reset builds a fresh session and starts it.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.turns = 0
	g.paused = false
	g.logged = false
	g.err = nil

	res, err := g.compile()
	if err != nil {
		g.err = err
		g.level, g.session, g.points = nil, nil, nil
		g.logger.Error("cannot build level", "error", err)
		return
	}

	player := g.factory.CreatePlayer()
	if player == nil || !player.Is(core.CategoryPlayer) {
		g.err = fmt.Errorf("pursuit: level %s: factory did not create a player", g.def.ID)
		g.level, g.session, g.points = nil, nil, nil
		g.logger.Error("cannot build level", "error", g.err)
		return
	}

	g.points = NewPoints(g.cfg.Points)
	g.level = res.NewLevel(g.points, g.cfg.Tuning())
	g.session = core.NewGame(player, g.level)
	g.session.Start()

	g.logger.Debug("session started",
		"ghosts", len(res.Ghosts),
		"pellets", g.level.RemainingPellets(),
		"size", fmt.Sprintf("%dx%d", res.Board.Width(), res.Board.Height()))
	g.logOutcome()
}

// Step plays one turn.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) && g.State().GameOver {
		g.Reset(platformcore.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.session != nil && g.session.IsInProgress() {
		g.paused = !g.paused
		return platformcore.StepResult{State: g.State()}
	}

	if g.session == nil || !g.session.IsInProgress() || g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	d, wait, ok := turnFor(in)
	if !ok {
		return platformcore.StepResult{State: g.State()}
	}

	g.turns++
	if !wait {
		g.session.Move(d)
	}
	if g.turns%g.cfg.Ghosts.MoveEvery == 0 {
		g.session.Tick()
	}
	g.logOutcome()

	return platformcore.StepResult{State: g.State(), Moved: true}
}

// turnFor maps input to a player move. wait is true for a passed turn.
func turnFor(in platformcore.InputFrame) (d core.Direction, wait, ok bool) {
	switch {
	case in.Has(platformcore.ActionUp):
		return core.North, false, true
	case in.Has(platformcore.ActionRight):
		return core.East, false, true
	case in.Has(platformcore.ActionDown):
		return core.South, false, true
	case in.Has(platformcore.ActionLeft):
		return core.West, false, true
	case in.Has(platformcore.ActionWait):
		return 0, true, true
	default:
		return 0, false, false
	}
}

// logOutcome reports a decided session once.
func (g *Game) logOutcome() {
	if g.logged || g.session == nil || g.session.State() != core.StateStopped {
		return
	}
	g.logged = true

	player := g.session.Player()
	fields := []any{
		"outcome", g.session.Outcome(),
		"score", player.Score(),
		"turns", g.turns,
		"ticks", g.session.Ticks(),
	}
	if killer := player.Killer(); killer != nil {
		fields = append(fields, "caught_by", killer.Strategy)
	}
	g.logger.Info("session finished", fields...)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: g.err != nil}
	}
	return platformcore.GameState{
		Score:    g.session.Player().Score(),
		GameOver: g.session.State() == core.StateStopped,
		Won:      g.session.Outcome() == core.OutcomeWon,
		Paused:   g.paused,
	}
}

// Err returns the error that prevented the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Level returns the running level, or nil before Reset.
func (g *Game) Level() *core.Level {
	return g.level
}

// Session returns the running session, or nil before Reset.
func (g *Game) Session() *core.Game {
	return g.session
}

// Legend returns the map legend in use.
func (g *Game) Legend() levels.Legend {
	return g.legend
}

// Turns returns the number of player turns played.
func (g *Game) Turns() int {
	return g.turns
}

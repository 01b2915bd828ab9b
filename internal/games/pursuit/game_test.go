package pursuit

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	platformcore "github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

func newTestGame(t *testing.T, cfg config.PursuitConfig, rows ...string) *Game {
	t.Helper()
	def := levels.Definition{ID: "test", Name: "Test", Rows: rows}
	g, err := New(def, cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Reset(platformcore.DefaultConfig())
	return g
}

func press(g *Game, a platformcore.Action) platformcore.StepResult {
	return g.Step(platformcore.FrameOf(a))
}

func TestEatingPelletsScores(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#P..#A#")

	res := press(g, platformcore.ActionRight)
	if !res.Moved {
		t.Error("a move should consume a turn")
	}
	if res.State.Score != 10 {
		t.Errorf("expected score 10, got %d", res.State.Score)
	}

	res = press(g, platformcore.ActionRight)
	if !res.State.GameOver || !res.State.Won {
		t.Errorf("eating the last pellet should win, got %+v", res.State)
	}
	if res.State.Score != 20 {
		t.Errorf("expected score 20, got %d", res.State.Score)
	}
}

func TestGhostsMoveEveryNTurns(t *testing.T) {
	cfg := config.DefaultPursuitConfig()
	cfg.Ghosts.MoveEvery = 2
	g := newTestGame(t, cfg, "#P.....A#")

	press(g, platformcore.ActionWait)
	if snap := g.Snapshot(); snap.GhostsPos[0] != core.C(7, 0) || snap.Ticks != 0 {
		t.Fatalf("ghost should not move on turn 1, snapshot %+v", snap)
	}

	press(g, platformcore.ActionWait)
	snap := g.Snapshot()
	if snap.GhostsPos[0] != core.C(6, 0) || snap.Ticks != 1 {
		t.Errorf("ghost should move on turn 2, snapshot %+v", snap)
	}
	if snap.Turns != 2 {
		t.Errorf("expected 2 turns, got %d", snap.Turns)
	}
}

func TestNoInputIsNoTurn(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#P.A#")

	res := g.Step(platformcore.NewInputFrame())
	if res.Moved || g.Turns() != 0 {
		t.Error("empty input should not play a turn")
	}
}

func TestCaughtAndRestart(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#PA..#")

	res := press(g, platformcore.ActionRight)
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("walking into a ghost should lose, got %+v", res.State)
	}
	snap := g.Snapshot()
	if snap.Alive || snap.CaughtBy != "chase" || snap.Outcome != core.OutcomeLost {
		t.Errorf("unexpected snapshot %+v", snap)
	}

	// Moves after the end are ignored.
	if res := press(g, platformcore.ActionLeft); res.Moved {
		t.Error("finished game should ignore moves")
	}

	press(g, platformcore.ActionRestart)
	state := g.State()
	if state.GameOver || state.Score != 0 || g.Turns() != 0 {
		t.Errorf("restart should give a fresh session, got %+v", state)
	}
	if !g.Session().IsInProgress() {
		t.Error("restarted session should be running")
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#P...A#")
	press(g, platformcore.ActionRight)
	press(g, platformcore.ActionRestart)

	if g.Turns() != 1 {
		t.Error("restart should only work after game over")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#P...A#")

	press(g, platformcore.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	press(g, platformcore.ActionRight)
	if g.Turns() != 0 {
		t.Error("paused game should ignore moves")
	}

	press(g, platformcore.ActionPause)
	press(g, platformcore.ActionRight)
	if g.State().Paused || g.Turns() != 1 {
		t.Error("unpaused game should play")
	}
}

func TestDeterminism(t *testing.T) {
	def, err := levels.NewBundledLoader().LoadByID("classic")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	g1, err := New(def, config.DefaultPursuitConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := New(def, config.DefaultPursuitConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	g1.Reset(platformcore.DefaultConfig())
	g2.Reset(platformcore.DefaultConfig())

	moves := []platformcore.Action{
		platformcore.ActionLeft, platformcore.ActionLeft, platformcore.ActionUp,
		platformcore.ActionWait, platformcore.ActionRight, platformcore.ActionDown,
	}
	for i := 0; i < 40; i++ {
		a := moves[i%len(moves)]
		press(g1, a)
		press(g2, a)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.Ticks != s2.Ticks || s1.Turns != s2.Turns {
		t.Errorf("counters differ: %+v vs %+v", s1, s2)
	}
	if s1.PlayerX != s2.PlayerX || s1.PlayerY != s2.PlayerY || s1.Outcome != s2.Outcome {
		t.Errorf("player differs: %+v vs %+v", s1, s2)
	}
	if len(s1.GhostsPos) != len(s2.GhostsPos) {
		t.Fatalf("ghost counts differ")
	}
	for i := range s1.GhostsPos {
		if s1.GhostsPos[i] != s2.GhostsPos[i] {
			t.Errorf("ghost %d differs: %v vs %v", i, s1.GhostsPos[i], s2.GhostsPos[i])
		}
	}
}

func TestGhostPoints(t *testing.T) {
	cfg := config.DefaultPursuitConfig()
	cfg.Points.Ghost = 50
	g := newTestGame(t, cfg, "#PK.#")

	press(g, platformcore.ActionRight)
	if g.State().Score != 50 {
		t.Errorf("expected 50 for the encounter, got %d", g.State().Score)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(levels.Definition{ID: "bad", Rows: []string{"##", "#"}}, config.DefaultPursuitConfig(), nil)
	var cfgErr *levels.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigurationError, got %v", err)
	}

	cfg := config.DefaultPursuitConfig()
	cfg.Legend = map[string]string{"x": "lava"}
	if _, err := New(levels.Definition{ID: "ok", Rows: []string{"#P.#"}}, cfg, nil); err == nil {
		t.Error("expected error for bad legend")
	}
}

func TestCustomLegend(t *testing.T) {
	cfg := config.DefaultPursuitConfig()
	cfg.Legend = map[string]string{"o": "pellet", "@": "start"}
	g := newTestGame(t, cfg, "#@oo#")

	press(g, platformcore.ActionRight)
	if g.State().Score != 10 {
		t.Errorf("custom pellet should score, got %d", g.State().Score)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#P.A#")
	s := platformcore.NewScreen(50, 6)
	g.Render(s)

	if !strings.Contains(s.Row(0), "Test") || !strings.Contains(s.Row(0), "Pellets: 1") {
		t.Errorf("HUD missing, got %q", s.Row(0))
	}
	// 5x1 board centered in rows 2..5 of a 50-wide screen
	if got := s.Row(3)[22:27]; got != "#@.A#" {
		t.Errorf("board row = %q, expected %q", got, "#@.A#")
	}
	if s.GetCell(25, 3).Color != platformcore.ColorRed {
		t.Error("chase ghost should be red")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#P.A#", "#####")
	s := platformcore.NewScreen(30, 3)
	g.Render(s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message, got\n%s", s.String())
	}
}

func TestBoardText(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(),
		"#####",
		"#P.C#",
		"#####",
	)
	want := "#####\n#@.C#\n#####"
	if got := BoardText(g.Level().Board(), g.Legend()); got != want {
		t.Errorf("BoardText =\n%s\nexpected\n%s", got, want)
	}
}

func TestAutoPilotClearsSafeLevel(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(),
		"#######",
		"#P..#A#",
		"#.#.###",
		"#...###",
		"#######",
	)

	snap := Play(g, 100)
	if snap.Outcome != core.OutcomeWon {
		t.Fatalf("autopilot should clear the level, got %+v", snap)
	}
	if snap.Pellets != 0 || snap.Eaten != 7 {
		t.Errorf("expected all 7 pellets eaten, got %+v", snap)
	}
}

func TestPlayStopsAtTurnLimit(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#P.#.#")

	snap := Play(g, 5)
	if snap.Turns != 5 || snap.State != core.StateInProgress {
		t.Errorf("expected 5 turns still running, got %+v", snap)
	}
}

func TestRegisterBundledLevels(t *testing.T) {
	reg := registry.New()
	n, err := RegisterLevels(reg, levels.NewBundledLoader(), config.DefaultPursuitConfig(), nil)
	if err != nil {
		t.Fatalf("RegisterLevels failed: %v", err)
	}
	if n != len(reg.List()) || n < 3 {
		t.Errorf("expected at least 3 levels, registered %d", n)
	}

	game, err := reg.Create("classic")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	game.Reset(platformcore.DefaultConfig())
	if game.State().GameOver {
		t.Error("fresh classic game should be running")
	}

	other, _ := reg.Create("classic")
	if other == game {
		t.Error("each Create should return a new game")
	}
}

func TestBoardTextUsesLegend(t *testing.T) {
	cfg := config.DefaultPursuitConfig()
	cfg.Legend = map[string]string{
		".": "wall",
		"x": "wall",
		"o": "pellet",
		"C": "ground",
		"G": "ghost:shy",
	}
	g := newTestGame(t, cfg,
		"x..G",
		"PooC",
	)

	want := "###G\n@oo "
	got := BoardText(g.Level().Board(), g.Legend())
	if got != want {
		t.Errorf("BoardText =\n%q\nexpected\n%q", got, want)
	}

	s := platformcore.NewScreen(30, 6)
	g.Render(s)
	if !strings.Contains(s.String(), "@oo") {
		t.Errorf("rendered board should use the legend's pellet, got\n%s", s.String())
	}
}

func TestGlyphsForDefaultLegend(t *testing.T) {
	for _, l := range []levels.Legend{nil, levels.DefaultLegend()} {
		gl := GlyphsFor(l)
		if gl.Wall != '#' || gl.Ground != ' ' || gl.Pellet != '.' {
			t.Errorf("unexpected terrain glyphs %+v", gl)
		}
		want := map[core.Strategy]rune{
			core.StrategyChase:  'A',
			core.StrategyAmbush: 'K',
			core.StrategyFlank:  'I',
			core.StrategyShy:    'C',
		}
		for s, r := range want {
			if gl.Ghosts[s] != r {
				t.Errorf("%s ghost drawn as %q, expected %q", s, gl.Ghosts[s], r)
			}
		}
	}
}

// trackingFactory hands out players it can recognise later.
type trackingFactory struct {
	*levels.DefaultFactory
	players  []*core.Unit
	noPlayer bool
}

func (f *trackingFactory) CreatePlayer() *core.Unit {
	if f.noPlayer {
		return nil
	}
	p := core.NewPlayer()
	f.players = append(f.players, p)
	return p
}

func TestFactorySuppliesPlayer(t *testing.T) {
	f := &trackingFactory{DefaultFactory: levels.NewDefaultFactory(10)}
	def := levels.Definition{ID: "test", Rows: []string{"#P.#"}}
	g, err := NewWithFactory(def, config.DefaultPursuitConfig(), f, nil)
	if err != nil {
		t.Fatalf("NewWithFactory failed: %v", err)
	}
	if len(f.players) != 0 {
		t.Fatal("no player should be created before Reset")
	}

	g.Reset(platformcore.DefaultConfig())
	if len(f.players) != 1 || g.Session().Player() != f.players[0] {
		t.Fatal("session should be driven by the factory's player")
	}

	press(g, platformcore.ActionRight)
	press(g, platformcore.ActionRestart)
	if len(f.players) != 2 || g.Session().Player() != f.players[1] {
		t.Error("restart should ask the factory for a new player")
	}
}

func TestFactoryWithoutPlayer(t *testing.T) {
	f := &trackingFactory{DefaultFactory: levels.NewDefaultFactory(10), noPlayer: true}
	g, err := NewWithFactory(levels.Definition{ID: "test", Rows: []string{"#P.#"}}, config.DefaultPursuitConfig(), f, nil)
	if err != nil {
		t.Fatalf("NewWithFactory failed: %v", err)
	}
	g.Reset(platformcore.DefaultConfig())

	if g.Err() == nil || g.Session() != nil {
		t.Error("a factory without a player should leave the game unplayable")
	}
	if !g.State().GameOver {
		t.Error("unplayable game should report game over")
	}

	if _, err := NewWithFactory(levels.Definition{ID: "test", Rows: []string{"#P.#"}}, config.DefaultPursuitConfig(), nil, nil); err == nil {
		t.Error("expected error for nil factory")
	}
}

func TestSnapshotPlayerPosition(t *testing.T) {
	g := newTestGame(t, config.DefaultPursuitConfig(), "#.P.#")
	snap := g.Snapshot()
	if !snap.Placed || snap.PlayerX != 2 || snap.PlayerY != 0 {
		t.Errorf("expected placed player at (2,0), got %+v", snap)
	}

	// A level without a start leaves the player off the board.
	g = newTestGame(t, config.DefaultPursuitConfig(), "#..A#")
	snap = g.Snapshot()
	if snap.Placed || snap.PlayerX != -1 || snap.PlayerY != -1 {
		t.Errorf("unplaced player should report (-1,-1), got %+v", snap)
	}
}

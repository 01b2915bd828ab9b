package registry

import (
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	r := New()
	for _, id := range []string{"b", "a"} {
		id := id
		if err := r.Register(id, "Level "+id, func() Game { return stubGame{id: id} }); err != nil {
			t.Fatalf("Register(%q) failed: %v", id, err)
		}
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("List should be sorted by ID, got %+v", list)
	}
	if list[0].Title != "Level a" {
		t.Errorf("unexpected title %q", list[0].Title)
	}

	g, err := r.Create("b")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "b" {
		t.Errorf("created wrong game %q", g.ID())
	}
	if !r.Exists("a") || r.Exists("c") {
		t.Error("Exists disagrees with registrations")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := New()
	f := func() Game { return stubGame{id: "x"} }
	if err := r.Register("x", "X", f); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("x", "X", f); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := New().Create("nope"); err == nil {
		t.Error("expected error for unknown game")
	}
}

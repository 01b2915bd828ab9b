package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "#@..#")
	s.SetWithColor(1, 0, '@', core.ColorCyan)
	s.SetWithColor(4, 1, 'A', core.ColorRed)

	got := RenderScreen(s)
	want := "#@..#\n    A"
	if got != want {
		t.Errorf("RenderScreen = %q, expected %q", got, want)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if !strings.Contains(styleFor(c).Render("x"), "x") {
			t.Errorf("style for %s lost the text", c)
		}
	}
	// Unknown colors fall back to the default style.
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q", got)
	}
}

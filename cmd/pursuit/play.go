package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level. Every key is one turn;
ghosts move every few turns depending on the difficulty.

Controls:
  Arrows/WASD  - Move
  Space        - Wait a turn
  P/Esc        - Pause
  R            - Restart (after the game ends)
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  pursuit play classic
  pursuit play classic --difficulty easy
  pursuit play mine --levels ./levels`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	cfg := core.DefaultConfig()
	return cfg.ScreenW, cfg.ScreenH
}

func runPlay(_ *cobra.Command, args []string) {
	reg, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game := lookupLevel(reg, args[0])

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height}

	if err := tui.Run(game, store, logger, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

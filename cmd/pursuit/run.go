package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit"
)

var (
	flagMaxTurns int
	flagNoSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run <level>",
	Short: "Play a level headless with the autopilot",
	Long: `Plays the level without a terminal UI. The autopilot walks to the
nearest pellet and avoids cells next to a ghost. The final board and
a summary are printed, and the result is saved unless --no-save is given.

Examples:
  pursuit run corridor
  pursuit run classic --max-turns 1000 --difficulty hard`,
	Args: cobra.ExactArgs(1),
	Run:  runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagMaxTurns, "max-turns", 500, "Stop after this many turns")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not save the result")
}

func runHeadless(_ *cobra.Command, args []string) {
	reg, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game, ok := lookupLevel(reg, args[0]).(*pursuit.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: level %q cannot be played headless\n", args[0])
		os.Exit(1)
	}

	game.Reset(core.DefaultConfig())
	if err := game.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	snap := pursuit.Play(game, flagMaxTurns)

	fmt.Println(pursuit.BoardText(game.Level().Board(), game.Legend()))
	fmt.Println()
	fmt.Printf("Level:    %s\n", snap.LevelID)
	fmt.Printf("Outcome:  %s\n", snap.Outcome)
	fmt.Printf("Score:    %d\n", snap.Score)
	fmt.Printf("Turns:    %d (ghost steps: %d)\n", snap.Turns, snap.Ticks)
	fmt.Printf("Pellets:  %d eaten, %d left\n", snap.Eaten, snap.Pellets)
	if snap.CaughtBy != "" {
		fmt.Printf("Caught by: %s ghost\n", snap.CaughtBy)
	}

	if flagNoSave {
		return
	}
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()
	if _, err := store.SaveResult(snap.Record()); err != nil {
		logger.Error("cannot save result", "error", err)
	}
}

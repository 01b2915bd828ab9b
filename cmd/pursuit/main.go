// pursuit is a turn-based grid chase game for the terminal.
//
// Usage:
//
//	pursuit list               - List available levels
//	pursuit play <level>       - Play a level
//	pursuit run <level>        - Play a level headless with the autopilot
//	pursuit check <file>...    - Compile level files and report errors
//	pursuit scores [level]     - Show results for a level, or browse all
//
// Global flags:
//
//	--config <path>       - Pursuit config YAML
//	--difficulty <name>   - easy, normal or hard
//	--levels <dir>        - Load levels from a directory instead of the bundled ones
//	--db <path>           - Results database (default: ~/.pursuit/scores.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagDBPath     string
	flagLogLevel   string
)

var (
	logger   = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pursuit"})
	settings = config.DefaultPursuitConfig()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Pursuit - clear the maze before the ghosts catch you",
	Long: `Pursuit is a turn-based chase game played in the terminal.
Eat every pellet on the level while four kinds of ghosts hunt you:
  A  chases you directly
  K  heads for where you are going
  I  cuts you off from the other side of the chaser
  C  chases from afar and retreats to its corner up close

Examples:
  pursuit list
  pursuit play classic
  pursuit play classic --difficulty hard
  pursuit run corridor --max-turns 200
  pursuit check ./my-level.txt
  pursuit scores classic`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pursuit config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: bundled levels)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pursuit/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup configures logging and loads the game config for every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	logger.SetReportTimestamp(level == log.DebugLevel)

	cfg, err := config.LoadPursuit(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPursuitPreset(&cfg, preset)
	settings = cfg

	logger.Debug("config loaded",
		"difficulty", preset,
		"move_every", cfg.Ghosts.MoveEvery,
		"lookahead", cfg.Ghosts.Lookahead,
		"shyness", cfg.Ghosts.Shyness,
		"retreat_corner", cfg.Ghosts.RetreatCorner)
	return nil
}

// newLoader returns the level loader selected by --levels.
func newLoader() *levels.Loader {
	loader := levels.NewBundledLoader()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}
	loader.Logger = logger
	return loader
}

// loadLevels registers every playable level in the default registry.
func loadLevels() (*registry.Registry, error) {
	n, err := pursuit.RegisterLevels(registry.Default, newLoader(), settings, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("levels registered", "count", n, "dir", flagLevelsDir)
	return registry.Default, nil
}

// lookupLevel returns a fresh game for id, or exits with a hint.
func lookupLevel(reg *registry.Registry, id string) registry.Game {
	if !reg.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'pursuit list' to see available levels.")
		os.Exit(1)
	}
	game, err := reg.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	return game
}

// openStore opens the results database. Play still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("results will not be saved", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

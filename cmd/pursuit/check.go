package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Compile level files and report problems",
	Long: `Loads each level file (.txt, .map, .yaml, .yml), compiles it with
the configured legend and prints its size and contents, or the first
problem found.

Examples:
  pursuit check ./levels/maze.txt
  pursuit check ./levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	legend, err := levels.ParseLegend(settings.Legend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	factory := levels.NewDefaultFactory(settings.Points.Pellet)
	compiler := levels.NewCompiler(factory, factory).WithLegend(legend)

	failed := 0
	for _, file := range args {
		if err := checkFile(os.Stdout, compiler, file); err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", file, err)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d level files failed\n", failed, len(args))
		os.Exit(1)
	}
}

// checkFile compiles one level file and describes it on w.
func checkFile(w io.Writer, compiler *levels.Compiler, file string) error {
	def, err := levels.LoadPath(file)
	if err != nil {
		return err
	}
	res, err := def.Compile(compiler)
	if err != nil {
		return err
	}

	b := res.Board
	fmt.Fprintf(w, "ok   %s: %q %dx%d, %d start(s), %d ghost(s), %d pellet(s)\n",
		file, def.ID, b.Width(), b.Height(), len(res.Starts), len(res.Ghosts), b.Count(core.CategoryPellet))
	if len(res.Starts) == 0 {
		fmt.Fprintf(w, "     warning: no player start, the level cannot be played\n")
	}
	return nil
}

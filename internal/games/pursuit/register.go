package pursuit

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

// RegisterLevels registers every level the loader can read, one game per
// level. Levels that fail to compile are skipped with a warning.
// Returns the number of levels registered.
func RegisterLevels(reg *registry.Registry, loader *levels.Loader, cfg config.PursuitConfig, logger *log.Logger) (int, error) {
	defs, err := loader.LoadAll()
	if err != nil {
		return 0, fmt.Errorf("pursuit: loading levels: %w", err)
	}

	n := 0
	for _, def := range defs {
		game, err := New(def, cfg, logger)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping level", "level", def.ID, "path", def.FilePath, "error", err)
			}
			continue
		}
		factory := func() registry.Game {
			return game.fresh()
		}
		if err := reg.Register(def.ID, def.Name, factory); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

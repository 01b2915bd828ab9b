package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/core"
)

// ConfigurationError reports a malformed map: missing source, empty or
// ragged rows, or a character the legend does not know.
//
// I/O failures while reading a map are never reported as ConfigurationError.
type ConfigurationError struct {
	Reason string

	// Char and Pos are set for unknown characters.
	Char   rune
	Pos    core.Coord
	HasPos bool
}

func (e *ConfigurationError) Error() string {
	if e.HasPos {
		return fmt.Sprintf("levels: invalid map: %s %q at %s", e.Reason, e.Char, e.Pos)
	}
	return "levels: invalid map: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

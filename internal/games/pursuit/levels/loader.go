package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit/levels/formats"
)

//go:embed maps
var bundledMaps embed.FS

// Bundled returns the maps shipped with the game.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundledMaps, "maps")
	if err != nil {
		panic(fmt.Sprintf("levels: bundled maps missing: %v", err))
	}
	return sub
}

// Definition is a level file before compilation.
type Definition struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
	FilePath string
}

// Compile builds the level's board with c.
func (d Definition) Compile(c *Compiler) (*Result, error) {
	res, err := c.Compile(d.Rows)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", d.ID, err)
	}
	return res, nil
}

// Loader reads level definitions from a file system.
type Loader struct {
	fsys fs.FS

	// Logger receives a warning for every file that is skipped. May be nil.
	Logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root)}
}

// NewBundledLoader creates a loader over the maps shipped with the game.
func NewBundledLoader() *Loader {
	return &Loader{fsys: Bundled()}
}

// FS returns the file system the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Definition, error) {
	var defs []Definition

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		def, err := l.LoadFile(p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "path", p, "error", err)
			}
			return nil
		}
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Definition, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Definition{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(p, data)
	if err != nil {
		return Definition{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Definition{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// ErrLevelNotFound is returned by LoadByID for unknown IDs.
var ErrLevelNotFound = errors.New("level not found")

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Definition, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Definition{}, err
	}
	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids, nil
}

// LoadPath reads one level file from anywhere on disk.
func LoadPath(file string) (Definition, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Definition{}, fmt.Errorf("reading file %s: %w", file, err)
	}
	parsed, err := parseByExtension(file, data)
	if err != nil {
		return Definition{}, fmt.Errorf("parsing file %s: %w", file, err)
	}
	return Definition{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Metadata: parsed.Metadata,
		FilePath: file,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(p string, data []byte) (formats.Level, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt", ".map":
		return formats.ParseText(p, data), nil
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", path.Ext(p))
	}
}

// Package levels provides level loading functionality for Flow.
// This package depends on board but board does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels/formats"
)

// ErrLevelNotFound is returned when no level has the requested id.
var ErrLevelNotFound = errors.New("level not found")

// Level represents a complete, validated level definition.
type Level struct {
	ID       string
	Name     string
	Author   string
	Grid     *board.Grid // Pristine grid, never mutated by play
	Metadata map[string]string
	FilePath string
}

// NewBoard creates a fresh play board for the level.
func (l *Level) NewBoard() *board.Board {
	return board.NewBoard(l.Grid.Clone())
}

// Stats returns grid statistics for listings.
func (l *Level) Stats() board.Stats {
	return board.ComputeStats(l.Grid)
}

// Layout returns the level in the textual layout format.
func (l *Level) Layout() string {
	return board.RenderLayout(l.Grid)
}

// Loader handles loading levels from a file system tree.
type Loader struct {
	Root string
	fsys fs.FS

	// OnSkip, if set, is called for every level file LoadAll skips.
	OnSkip func(path string, err error)
}

// NewLoader creates a new level loader over a directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a level loader over an arbitrary file system.
// root is only used to report file paths.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic
// ordering; when two files share an ID the first one walked wins.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]bool)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.skip(p, err)
			return nil
		}
		if seen[level.ID] {
			l.skip(p, fmt.Errorf("duplicate level id %q", level.ID))
			return nil
		}
		seen[level.ID] = true

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file. p is relative to the loader root and
// uses forward slashes.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, p, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	level, err := FromParsed(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", p, err)
	}
	level.FilePath = filepath.Join(l.Root, filepath.FromSlash(p))
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) skip(p string, err error) {
	if l.OnSkip != nil {
		l.OnSkip(p, err)
	}
}

// LoadPath loads a single level file from the operating system path.
func LoadPath(p string) (Level, error) {
	return NewLoader(filepath.Dir(p)).LoadFile(filepath.Base(p))
}

// FromParsed parses and validates the layout of a level file.
func FromParsed(parsed formats.Level) (Level, error) {
	grid, err := board.ParseString(parsed.Layout)
	if err != nil {
		return Level{}, err
	}
	if err := board.Validate(grid); err != nil {
		return Level{}, err
	}

	if parsed.ID == "" {
		return Level{}, errors.New("missing level id")
	}
	name := parsed.Name
	if name == "" {
		name = parsed.ID
	}

	return Level{
		ID:       parsed.ID,
		Name:     name,
		Author:   parsed.Author,
		Grid:     grid,
		Metadata: parsed.Metadata,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, name, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt", ".flow":
		return formats.ParseText(data, name), nil
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

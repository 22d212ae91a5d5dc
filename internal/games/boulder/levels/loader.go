// Package levels provides cave loading for the boulder game. This package
// depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mdevolde/bouldertui/internal/games/boulder/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder/levels/formats"
)

// Level represents a complete cave definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Player   core.Coord
	Rows     []string
	FilePath string
}

// ToGrid builds a simulation grid from the cave, with the zone table sized
// to the given canvas.
func (l *Level) ToGrid(canvasW, canvasH int) *core.Grid {
	return core.NewGrid(l.Width, l.Height, l.Rows, l.Player, canvasW, canvasH)
}

// Loader handles loading caves from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new cave loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all cave files, sorted by ID for
// deterministic ordering. Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var caves []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		cave, err := l.LoadFile(path)
		if err != nil {
			return nil
		}

		caves = append(caves, cave)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(caves, func(i, j int) bool {
		return caves[i].ID < caves[j].ID
	})
	return caves, nil
}

// LoadFile loads a single cave file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	cave := fromParsed(parsed)
	cave.FilePath = path
	if cave.ID == "" {
		cave.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if cave.Name == "" {
		cave.Name = cave.ID
	}
	return cave, nil
}

// LoadByID loads a specific cave by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	caves, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, cave := range caves {
		if cave.ID == id {
			return cave, nil
		}
	}
	return Level{}, fmt.Errorf("cave not found: %s", id)
}

// ListIDs returns all cave IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	caves, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(caves))
	for i, cave := range caves {
		ids[i] = cave.ID
	}
	return ids, nil
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
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".bbcff":
		return formats.ParseBBCFF(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// fromParsed converts a format-level cave into the loader's Level.
func fromParsed(parsed formats.Level) Level {
	return Level{
		ID:     parsed.ID,
		Name:   parsed.Name,
		Width:  parsed.Width,
		Height: parsed.Height,
		Player: parsed.Player,
		Rows:   parsed.Rows,
	}
}

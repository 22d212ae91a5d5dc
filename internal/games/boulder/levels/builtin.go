package levels

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mdevolde/bouldertui/internal/games/boulder/levels/formats"
)

//go:embed builtin/*.bbcff
var builtinFS embed.FS

// LoadBuiltin returns the caves compiled into the binary, so the game runs
// with no level files on disk. Sorted by ID like LoadAll.
func LoadBuiltin() ([]Level, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin caves: %w", err)
	}

	var caves []Level
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin cave %s: %w", entry.Name(), err)
		}
		parsed, err := formats.ParseBBCFF(data)
		if err != nil {
			return nil, fmt.Errorf("parsing builtin cave %s: %w", entry.Name(), err)
		}
		cave := fromParsed(parsed)
		cave.ID = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		cave.Name = cave.ID
		caves = append(caves, cave)
	}

	sort.Slice(caves, func(i, j int) bool {
		return caves[i].ID < caves[j].ID
	})
	return caves, nil
}

// Load returns the caves from dir when it is set and contains any, and the
// builtin set otherwise.
func Load(dir string) ([]Level, error) {
	if dir != "" {
		caves, err := NewLoader(dir).LoadAll()
		if err == nil && len(caves) > 0 {
			return caves, nil
		}
	}
	return LoadBuiltin()
}

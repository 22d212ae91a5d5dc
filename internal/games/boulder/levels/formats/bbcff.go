// Package formats provides pluggable cave file format parsers.
package formats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mdevolde/bouldertui/internal/games/boulder/core"
)

// Level represents a parsed cave ready for use.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Player core.Coord
	Rows   []string
	Meta   map[string]string
}

// ParseBBCFF parses the plain-text cave format:
//
//	line 1: <height> <width>
//	line 2: <player_x> <player_y>
//	line 3: reserved, skipped
//	rest:   row-by-row character grid (W r d . P X, anything else empty)
//
// Column index is x, row index is y, zero-based, in character order within
// each line. A missing or unparsable header is an error; the system is not
// expected to run with a broken cave.
func ParseBBCFF(data []byte) (Level, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 3 {
		return Level{}, fmt.Errorf("bbcff: missing header lines")
	}

	height, width, err := parsePair(lines[0])
	if err != nil {
		return Level{}, fmt.Errorf("bbcff: size line: %w", err)
	}
	playerX, playerY, err := parsePair(lines[1])
	if err != nil {
		return Level{}, fmt.Errorf("bbcff: player line: %w", err)
	}
	if width <= 0 || height <= 0 {
		return Level{}, fmt.Errorf("bbcff: invalid size %dx%d", width, height)
	}

	// Line 3 is reserved; everything after it is the grid.
	rows := lines[3:]
	if len(rows) > height {
		rows = rows[:height]
	}

	return Level{
		Width:  width,
		Height: height,
		Player: core.C(playerX, playerY),
		Rows:   rows,
	}, nil
}

// parsePair reads two whitespace-separated integers.
func parsePair(line string) (int, int, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("want two integers, got %q", line)
	}
	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", parts[0], err)
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", parts[1], err)
	}
	return first, second, nil
}

// FormatExtensions returns supported cave file extensions.
func FormatExtensions() []string {
	return []string{".bbcff", ".yaml", ".yml"}
}

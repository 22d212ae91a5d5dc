package core

import (
	"fmt"
	"strings"
)

// Rune returns the level character for the tile's occupant, the same set the
// map format uses. Used for debugging dumps and golden tests.
func (g *Grid) Rune(t *Tile) rune {
	switch field := t.Field(); field.Kind {
	case FieldDirt:
		return '.'
	case FieldWall:
		return 'W'
	case FieldExit:
		return 'X'
	case FieldEntity:
		switch g.entities[field.Entity].Kind {
		case EntityRock:
			return 'r'
		case EntityDiamond:
			return 'd'
		case EntityPlayer:
			return 'P'
		}
	}
	return ' '
}

// Dump creates an ASCII representation of the grid state, one character per
// tile plus a header line. Used for debugging and test assertions.
func (g *Grid) Dump() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tick: %d | Player: %v | Zones: %d\n", g.tick, g.playerPos, len(g.zones)))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			sb.WriteRune(g.Rune(&g.tiles[y*g.w+x]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

package boulder

import (
	platformcore "github.com/mdevolde/bouldertui/internal/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder/core"
)

// zoneCanvas is the grid's renderer: a persistent cell buffer sized to one
// zone. The grid pushes single-tile draws after each applied action and a
// full redraw when the player crosses into a new zone; Render blits the
// buffer to the screen without touching the simulation.
type zoneCanvas struct {
	w, h  int
	cells [][]platformcore.Cell
	zone  core.Zone
}

func newZoneCanvas(w, h int) *zoneCanvas {
	c := &zoneCanvas{w: w, h: h}
	c.cells = make([][]platformcore.Cell, h)
	for y := range c.cells {
		c.cells[y] = make([]platformcore.Cell, w)
	}
	c.clear()
	return c
}

func (c *zoneCanvas) clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = platformcore.Cell{Rune: ' ', Color: platformcore.ColorDefault}
		}
	}
}

// RenderTile draws one tile of the displayed zone. A draw for a different
// zone means the buffer is stale, so the whole zone is redrawn instead.
func (c *zoneCanvas) RenderTile(g *core.Grid, t *core.Tile, z core.Zone) {
	if z.Index != c.zone.Index {
		c.RenderZone(g, z)
		return
	}
	pos := t.Position()
	lx := pos.X - z.X
	ly := pos.Y - z.Y
	if lx < 0 || lx >= c.w || ly < 0 || ly >= c.h {
		return
	}
	c.cells[ly][lx] = tileCell(g, t)
}

// RenderZone redraws the whole zone into the buffer.
func (c *zoneCanvas) RenderZone(g *core.Grid, z core.Zone) {
	c.zone = z
	c.clear()
	for y := 0; y < z.H; y++ {
		for x := 0; x < z.W; x++ {
			if t := g.TileAt(z.X+x, z.Y+y); t != nil {
				c.cells[y][x] = tileCell(g, t)
			}
		}
	}
}

// blit copies the buffer into the screen at the given offset.
func (c *zoneCanvas) blit(dst *platformcore.Screen, offsetX, offsetY int) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cell := c.cells[y][x]
			dst.SetColored(offsetX+x, offsetY+y, cell.Rune, cell.Color)
		}
	}
}

// tileCell maps a tile's occupant to its screen glyph and color.
func tileCell(g *core.Grid, t *core.Tile) platformcore.Cell {
	switch g.Rune(t) {
	case 'W':
		return platformcore.Cell{Rune: '█', Color: platformcore.ColorGray}
	case '.':
		return platformcore.Cell{Rune: '▒', Color: platformcore.ColorOrange}
	case 'r':
		return platformcore.Cell{Rune: 'O', Color: platformcore.ColorWhite}
	case 'd':
		return platformcore.Cell{Rune: '◆', Color: platformcore.ColorBrightCyan}
	case 'P':
		return platformcore.Cell{Rune: '@', Color: platformcore.ColorBrightYellow}
	case 'X':
		return platformcore.Cell{Rune: 'X', Color: platformcore.ColorBrightGreen}
	default:
		return platformcore.Cell{Rune: ' ', Color: platformcore.ColorDefault}
	}
}

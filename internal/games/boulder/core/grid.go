package core

import "fmt"

// Grid owns the 2D tile array, the entity arena, the cached player
// coordinate and the zone table, and orchestrates one simulation tick.
//
// Tiles are stored in row-major order: index = y*W + x. The entity arena is
// a flat slice indexed by stable EntityID handles; tiles reference entities
// through those handles. A record that loses its last tile reference (for
// example the earlier of two rocks falling into the same cell, or a
// collected diamond) simply becomes unreachable: occupancy scans go through
// the tiles, never through the arena.
type Grid struct {
	w, h     int
	tiles    []Tile
	entities []Entity

	// playerPos is denormalized from the tile containing the player and
	// re-synchronized at the end of each player pass. Between the rock pass
	// and that point it may lag one cell behind.
	playerPos Coord

	zones    []Zone
	renderer Renderer

	tick uint64

	// hasPlayer records whether the level spawned a player at all;
	// playerGone that the player legitimately left the board (crushed or
	// exited). Only with a player expected and neither flag set is a
	// missing player tile a fatal invariant violation.
	hasPlayer  bool
	playerGone bool
}

// NewGrid builds a grid from a character map. Rows use the level character
// set: 'W' wall, 'r' rock, 'd' diamond, '.' dirt, 'P' player, 'X' exit, and
// anything else empty. Rows shorter than width are padded with empty cells;
// rows beyond height are ignored. The zone table is computed once from the
// map and canvas dimensions.
func NewGrid(width, height int, rows []string, player Coord, canvasW, canvasH int) *Grid {
	g := &Grid{
		w:     width,
		h:     height,
		tiles: make([]Tile, width*height),
		zones: ZonesFromMap(width, height, canvasW, canvasH),
	}

	for y := 0; y < height; y++ {
		var line []rune
		if y < len(rows) {
			line = []rune(rows[y])
		}
		for x := 0; x < width; x++ {
			var ch rune
			if x < len(line) {
				ch = line[x]
			}
			g.tiles[y*width+x] = NewTile(x, y, g.fieldFor(ch, x, y))
		}
	}

	g.playerPos = player
	return g
}

// fieldFor maps one level character to a Field, spawning arena records for
// entity characters.
func (g *Grid) fieldFor(ch rune, x, y int) Field {
	switch ch {
	case 'W':
		return WallField()
	case 'r':
		return EntityField(g.spawn(Entity{Kind: EntityRock, Pos: C(x, y)}))
	case 'd':
		return EntityField(g.spawn(Entity{Kind: EntityDiamond, Pos: C(x, y)}))
	case 'P':
		g.hasPlayer = true
		return EntityField(g.spawn(Entity{Kind: EntityPlayer, Pos: C(x, y)}))
	case '.':
		return DirtField()
	case 'X':
		return ExitField()
	default:
		return EmptyField()
	}
}

// spawn appends a record to the arena and returns its handle.
func (g *Grid) spawn(e Entity) EntityID {
	g.entities = append(g.entities, e)
	return EntityID(len(g.entities) - 1)
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.h }

// Tick returns the number of completed simulation ticks.
func (g *Grid) Tick() uint64 { return g.tick }

// Zones returns the zone table computed at construction.
func (g *Grid) Zones() []Zone { return g.zones }

// PlayerPosition returns the cached player coordinate.
func (g *Grid) PlayerPosition() Coord { return g.playerPos }

// Entity returns the arena record for the given handle.
func (g *Grid) Entity(id EntityID) Entity { return g.entities[id] }

// SetRenderer installs the drawing capability. A nil renderer disables all
// drawing.
func (g *Grid) SetRenderer(r Renderer) { g.renderer = r }

// TileAt returns the tile at (x, y), or nil when the coordinate is outside
// the array.
func (g *Grid) TileAt(x, y int) *Tile {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return nil
	}
	return &g.tiles[y*g.w+x]
}

// NearestTile returns the neighboring tile one step from c in the given
// direction. Afk yields no tile, never the origin tile.
func (g *Grid) NearestTile(c Coord, direction Movement) *Tile {
	if direction == Afk {
		return nil
	}
	next := direction.EditPosition(c)
	return g.TileAt(next.X, next.Y)
}

// TilesWithEntity scans the whole grid row-major, top-to-bottom and
// left-to-right, collecting the handles of tiles occupied by the given
// entity kind. The scan order is the tie-break for simultaneous falls.
// O(width*height) per call, fine at interactive tick rates for maps of this
// genre's size.
func (g *Grid) TilesWithEntity(kind EntityKind) []EntityID {
	var ids []EntityID
	for i := range g.tiles {
		field, present := g.tiles[i].ObjectOn()
		if !present || field.Kind != FieldEntity {
			continue
		}
		if g.entities[field.Entity].Kind == kind {
			ids = append(ids, field.Entity)
		}
	}
	return ids
}

// findPlayer returns the handle of the player entity via its cached tile, or
// the full-scan fallback.
func (g *Grid) findPlayer() (EntityID, bool) {
	if tile := g.TileAt(g.playerPos.X, g.playerPos.Y); tile != nil {
		if field, present := tile.ObjectOn(); present && field.Kind == FieldEntity {
			if g.entities[field.Entity].Kind == EntityPlayer {
				return field.Entity, true
			}
		}
	}
	if ids := g.TilesWithEntity(EntityPlayer); len(ids) > 0 {
		return ids[0], true
	}
	return NoEntity, false
}

// Update drives exactly one discrete simulation step: the fixed pass order
// Rocks -> Player -> Diamonds, each pass collecting its deferred actions
// against the current, unmutated grid and applying them before the next pass
// begins. The ordering is load-bearing: rock gravity resolves before the
// player moves, and diamonds fall only once the player's position for this
// tick is final.
func (g *Grid) Update() TickResult {
	res := TickResult{}

	// Rocks pass.
	var actions []Action
	for _, id := range g.TilesWithEntity(EntityRock) {
		actions = append(actions, g.fallActions(id, &res)...)
	}
	g.ApplyActions(actions)

	// Player pass. The zone is resolved before and after so a crossing can
	// force the full redraw of the new zone.
	zoneBefore, okBefore := CurrentZone(g.playerPos, g.zones)

	actions = nil
	if id, ok := g.findPlayer(); ok {
		actions = g.playerActions(id, &res)
	}
	if len(actions) == 0 {
		// No movement this tick: record the player idle instead of leaving
		// its prior intent stale.
		g.SetPlayerDoing(Afk, false)
	} else {
		g.ApplyActions(actions)
	}

	g.refreshPlayerPosition(&res)

	if zoneAfter, ok := CurrentZone(g.playerPos, g.zones); ok && okBefore && zoneAfter.Index != zoneBefore.Index {
		res.ZoneChanged = true
		g.RenderPlayerZone()
	}

	// Diamonds pass.
	actions = nil
	for _, id := range g.TilesWithEntity(EntityDiamond) {
		actions = append(actions, g.fallActions(id, &res)...)
	}
	g.ApplyActions(actions)

	g.tick++
	res.Tick = g.tick
	if res.PlayerCrushed || res.PlayerExited {
		g.playerGone = true
	}
	return res
}

// refreshPlayerPosition re-reads the player's tile to re-synchronize the
// cached coordinate. A missing player without a recorded crush or exit means
// the level is malformed or the state corrupted, a fatal invariant
// violation rather than a recoverable condition.
func (g *Grid) refreshPlayerPosition(res *TickResult) {
	if ids := g.TilesWithEntity(EntityPlayer); len(ids) > 0 {
		g.playerPos = g.entities[ids[0]].Pos
		return
	}
	if !g.hasPlayer || g.playerGone || res.PlayerCrushed || res.PlayerExited {
		return
	}
	panic(fmt.Sprintf("boulder: no player tile found near %v", g.playerPos))
}

// ApplyActions applies each action to the grid in order and, immediately
// after each mutation, renders the affected tile for the zone currently
// containing the player. Without a resolvable zone or renderer the drawing
// is silently skipped.
func (g *Grid) ApplyActions(actions []Action) {
	for _, action := range actions {
		action.Apply(g)
		if g.renderer == nil {
			continue
		}
		if zone, ok := CurrentZone(g.playerPos, g.zones); ok {
			if tile := g.TileAt(action.Pos.X, action.Pos.Y); tile != nil {
				g.renderer.RenderTile(g, tile, zone)
			}
		}
	}
}

// SetPlayerDoing records the player's movement intent. With pushing false
// the emitted action is the player's cancel-push transform; with pushing
// true the updated record is simply re-placed on its current tile, the
// actual displacement being resolved on the next Update through the player
// pass. The single action is applied immediately.
func (g *Grid) SetPlayerDoing(movement Movement, pushing bool) {
	id, ok := g.findPlayer()
	if !ok {
		return
	}
	player := g.entities[id]
	player.Movement = movement

	var action Action
	if !pushing {
		action = g.cancelPush(id, player)
	} else {
		player.Pushing = true
		action = EntityAction(player.Pos, id, player)
	}
	action.Apply(g)
}

// RenderPlayerZone redraws the whole zone currently containing the player.
func (g *Grid) RenderPlayerZone() {
	if g.renderer == nil {
		return
	}
	if zone, ok := CurrentZone(g.playerPos, g.zones); ok {
		g.renderer.RenderZone(g, zone)
	}
}

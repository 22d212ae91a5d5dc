package core

// fallOrder is the fixed candidate order of the genre's gravity rule: fall
// straight down, otherwise roll off the ledge to the left, otherwise to the
// right. The first eligible direction wins.
var fallOrder = [3]Movement{MoveDown, MoveLeft, MoveRight}

// canFallTo reports whether a falling entity may move into the given tile in
// the given direction. The rules, per target occupant:
//
//   - Empty: eligible.
//   - Wall, Dirt, Exit: blocked.
//   - Player: eligible only when the faller has already been falling for at
//     least one prior tick (fallingSince > 0) and the direction under test is
//     straight down. This is the squish trigger.
//   - Any other entity, any direction: blocked.
//   - Off-grid (nil tile): blocked.
func (g *Grid) canFallTo(tile *Tile, direction Movement, fallingSince int) bool {
	if tile == nil {
		return false
	}
	field := tile.Field()
	switch field.Kind {
	case FieldEmpty:
		return true
	case FieldEntity:
		occupant := g.entities[field.Entity]
		return occupant.Kind == EntityPlayer && fallingSince > 0 && direction == MoveDown
	default:
		return false
	}
}

// FallDirection resolves the direction the entity would fall this tick, fresh
// from FallingSince and the grid's current contents. ok is false when no
// direction is eligible.
func (g *Grid) FallDirection(e Entity) (Movement, bool) {
	for _, direction := range fallOrder {
		tile := g.NearestTile(e.Pos, direction)
		if g.canFallTo(tile, direction, e.FallingSince) {
			return direction, true
		}
	}
	return Afk, false
}

// FuturePosition returns the cell the entity will occupy after this tick's
// fall resolution: one step in the fall direction, or its current cell when
// it is not falling.
func (g *Grid) FuturePosition(id EntityID) Coord {
	e := g.entities[id]
	if direction, ok := g.FallDirection(e); ok {
		return direction.EditPosition(e.Pos)
	}
	return e.Pos
}

// CheckCollision reports whether the entity's would-be next position equals
// the other entity's current position. Used to detect a faller landing on
// the player ahead of emitting its movement.
func (g *Grid) CheckCollision(id, other EntityID) bool {
	return g.FuturePosition(id).Equal(g.entities[other].Pos)
}

// fallActions computes the deferred actions for one falling entity (rock or
// diamond) against the current, unmutated grid.
//
// Not falling: FallingSince resets to 0 and the entity is re-placed unchanged
// on its current tile. The no-op action is still emitted so that every
// evaluated entity is present in the collected action list.
//
// Falling: FallingSince increments on the moved record and two actions are
// emitted, vacate the old cell then occupy the new one.
func (g *Grid) fallActions(id EntityID, res *TickResult) []Action {
	e := g.entities[id]

	direction, ok := g.FallDirection(e)
	if !ok {
		reset := e
		reset.FallingSince = 0
		return []Action{EntityAction(e.Pos, id, reset)}
	}

	next := direction.EditPosition(e.Pos)
	if target := g.TileAt(next.X, next.Y); target != nil {
		if field, present := target.ObjectOn(); present && field.Kind == FieldEntity {
			if g.entities[field.Entity].Kind == EntityPlayer {
				res.PlayerCrushed = true
			}
		}
	}

	moved := e
	moved.FallingSince++
	res.Moves = append(res.Moves, MoveEvent{
		ID:        id,
		Kind:      e.Kind,
		From:      e.Pos,
		To:        next,
		Direction: direction,
	})
	return []Action{
		NewAction(e.Pos, EmptyField()),
		EntityAction(next, id, moved),
	}
}

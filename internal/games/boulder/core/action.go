package core

// Action is a deferred mutation record: a target coordinate and the Field
// that coordinate should hold once the action is applied. Decoupling "decide"
// from "mutate" lets every entity in a pass read a consistent before-this-
// pass view of the grid.
//
// Multiple actions may target the same coordinate within one collected list;
// they are applied strictly in emission order, so a later action overwrites
// an earlier one's effect on the same cell. That is an intentional
// last-writer-wins policy, not a conflict.
type Action struct {
	Pos   Coord
	Field Field

	// Entity holds the updated arena record when Field carries an entity
	// handle. The record is written back at apply time; until then the arena
	// still holds the pre-pass value.
	Entity *Entity
}

// NewAction creates an action placing a plain field value at pos.
func NewAction(pos Coord, field Field) Action {
	return Action{Pos: pos, Field: field}
}

// EntityAction creates an action placing the updated record of entity id at
// pos.
func EntityAction(pos Coord, id EntityID, e Entity) Action {
	e.Pos = pos
	return Action{Pos: pos, Field: EntityField(id), Entity: &e}
}

// Apply mutates the grid: the arena record first (when present), then the
// tile's field. Out-of-bounds targets are ignored.
func (a Action) Apply(g *Grid) {
	tile := g.TileAt(a.Pos.X, a.Pos.Y)
	if tile == nil {
		return
	}
	if a.Field.Kind == FieldEntity && a.Entity != nil {
		g.entities[a.Field.Entity] = *a.Entity
	}
	tile.SetObjectOn(a.Field)
}

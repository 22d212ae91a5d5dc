package core

// Tile is a single grid cell: an immutable position assigned at creation plus
// the Field currently occupying it. Tiles never move and are never deleted;
// the grid's tile array is fixed-size for the lifetime of a level.
type Tile struct {
	pos   Coord
	field Field
}

// NewTile creates a tile at the given position with the given occupant.
func NewTile(x, y int, field Field) Tile {
	return Tile{pos: C(x, y), field: field}
}

// Position returns the tile's fixed coordinate.
func (t *Tile) Position() Coord {
	return t.pos
}

// ObjectOn returns the occupant for the "interesting" kinds only: Entity,
// Wall and Exit. Dirt and Empty read as "nothing of interest here" for
// collision and falling queries. Callers that need to see Dirt (dig checks,
// fall blocking, rendering) read the raw Field accessor instead.
func (t *Tile) ObjectOn() (Field, bool) {
	switch t.field.Kind {
	case FieldEntity, FieldWall, FieldExit:
		return t.field, true
	default:
		return Field{}, false
	}
}

// Field returns the tile's occupant unconditionally, Dirt and Empty included.
func (t *Tile) Field() Field {
	return t.field
}

// SetObjectOn overwrites the tile's occupant wholesale. No validation is done
// here; legality of the transition is entirely the responsibility of whoever
// constructed the Action.
func (t *Tile) SetObjectOn(field Field) {
	t.field = field
}

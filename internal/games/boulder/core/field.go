// Package core provides the cave simulation for the boulder game: the
// tile/field data model, the deferred-action mutation protocol, gravity and
// push resolution, and the zone-based redraw trigger. The package is
// UI-agnostic and deterministic; rendering and input are injected by the
// caller.
package core

// EntityID is a stable handle into the grid's entity arena.
type EntityID int

// NoEntity marks the absence of an entity handle.
const NoEntity EntityID = -1

// FieldKind enumerates what can occupy a cell.
type FieldKind uint8

const (
	FieldEmpty FieldKind = iota
	FieldDirt
	FieldWall
	FieldExit
	FieldEntity
)

// String returns the string representation of a field kind.
func (k FieldKind) String() string {
	switch k {
	case FieldEmpty:
		return "Empty"
	case FieldDirt:
		return "Dirt"
	case FieldWall:
		return "Wall"
	case FieldExit:
		return "Exit"
	case FieldEntity:
		return "Entity"
	default:
		return "Unknown"
	}
}

// Field is the closed variant describing a cell's occupant. Exactly one Field
// value occupies a Tile at any time; it is the sole source of truth for what
// is "there". Entity is valid only when Kind is FieldEntity.
type Field struct {
	Kind   FieldKind
	Entity EntityID
}

// EmptyField returns an Empty field value.
func EmptyField() Field {
	return Field{Kind: FieldEmpty, Entity: NoEntity}
}

// DirtField returns a Dirt field value.
func DirtField() Field {
	return Field{Kind: FieldDirt, Entity: NoEntity}
}

// WallField returns a Wall field value.
func WallField() Field {
	return Field{Kind: FieldWall, Entity: NoEntity}
}

// ExitField returns an Exit field value.
func ExitField() Field {
	return Field{Kind: FieldExit, Entity: NoEntity}
}

// EntityField returns a field value holding the given entity handle.
func EntityField(id EntityID) Field {
	return Field{Kind: FieldEntity, Entity: id}
}

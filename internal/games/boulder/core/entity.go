package core

// EntityKind enumerates the movable entity kinds sharing the tile array.
type EntityKind uint8

const (
	EntityRock EntityKind = iota
	EntityDiamond
	EntityPlayer
)

// String returns the string representation of an entity kind.
func (k EntityKind) String() string {
	switch k {
	case EntityRock:
		return "Rock"
	case EntityDiamond:
		return "Diamond"
	case EntityPlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

// Entity is one record in the grid's entity arena. Records are treated as
// immutable during decision collection; a move or fall produces a new record
// value carried inside an Action and written back only when the Action is
// applied.
//
// FallingSince counts consecutive ticks spent in unobstructed fall and is
// reset to 0 the instant the entity is not falling. It is the sole piece of
// entity-local state the fall resolution depends on; there is no persisted
// "falling" boolean.
type Entity struct {
	Kind         EntityKind
	Pos          Coord
	FallingSince int

	// Player-only: movement intent recorded by SetPlayerDoing, consumed by
	// the player pass, and the push flag gating horizontal rock pushes.
	Movement Movement
	Pushing  bool
}

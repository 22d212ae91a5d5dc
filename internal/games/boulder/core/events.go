package core

// MoveEvent records one entity displacement applied during a tick.
type MoveEvent struct {
	ID        EntityID
	Kind      EntityKind
	From, To  Coord
	Direction Movement
}

// TickResult describes what happened during one call to Update.
type TickResult struct {
	Tick uint64

	Moves             []MoveEvent
	DiamondsCollected int
	DirtDug           int

	// PlayerCrushed is set when a falling entity moved onto the player's
	// cell this tick. The player tile is overwritten by the faller; the
	// caller ends the level as failed.
	PlayerCrushed bool

	// PlayerExited is set when the player stepped onto the Exit.
	PlayerExited bool

	// ZoneChanged is set when the player's zone differed before and after
	// the player pass, which forces a full redraw of the new zone.
	ZoneChanged bool
}

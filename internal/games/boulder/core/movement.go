package core

// Movement represents a cardinal movement intent, or Afk for "no intent".
// Afk carries no displacement and is excluded from directional grid queries:
// asking for the neighboring tile in the Afk direction yields no tile, never
// the origin tile, so standing still can not read as a self-collision.
type Movement uint8

const (
	Afk Movement = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// String returns the string representation of a movement.
func (m Movement) String() string {
	switch m {
	case Afk:
		return "Afk"
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Down"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// EditPosition translates a coordinate one step in this direction.
// Afk returns the coordinate unchanged.
func (m Movement) EditPosition(c Coord) Coord {
	switch m {
	case MoveUp:
		return c.Add(0, -1)
	case MoveDown:
		return c.Add(0, 1)
	case MoveLeft:
		return c.Add(-1, 0)
	case MoveRight:
		return c.Add(1, 0)
	default:
		return c
	}
}

// Horizontal returns true for left/right movements.
// Pushes are only resolved along the horizontal axis.
func (m Movement) Horizontal() bool {
	return m == MoveLeft || m == MoveRight
}

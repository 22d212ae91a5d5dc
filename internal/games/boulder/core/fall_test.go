package core

import "testing"

// testGrid builds a grid from rows, locating the player by its 'P' character.
// The canvas covers the whole map so the zone table has a single zone.
func testGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	player := C(0, 0)
	for y, row := range rows {
		for x, ch := range row {
			if ch == 'P' {
				player = C(x, y)
			}
		}
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return NewGrid(width, len(rows), rows, player, width, len(rows))
}

// entityAt returns the handle of the entity occupying (x, y).
func entityAt(t *testing.T, g *Grid, x, y int) EntityID {
	t.Helper()
	tile := g.TileAt(x, y)
	if tile == nil {
		t.Fatalf("no tile at (%d,%d)", x, y)
	}
	field, present := tile.ObjectOn()
	if !present || field.Kind != FieldEntity {
		t.Fatalf("no entity at (%d,%d), field %v", x, y, tile.Field().Kind)
	}
	return field.Entity
}

func TestFallPriorityDown(t *testing.T) {
	g := testGrid(t,
		"r",
		" ",
	)
	id := entityAt(t, g, 0, 0)

	direction, ok := g.FallDirection(g.Entity(id))
	if !ok || direction != MoveDown {
		t.Fatalf("expected down fall, got %v ok=%v", direction, ok)
	}
}

func TestFallPriorityLeftBeforeRight(t *testing.T) {
	// Down is blocked by a wall, both sides open: left wins.
	g := testGrid(t,
		" r ",
		"WWW",
	)
	id := entityAt(t, g, 1, 0)

	direction, ok := g.FallDirection(g.Entity(id))
	if !ok || direction != MoveLeft {
		t.Fatalf("expected left roll, got %v ok=%v", direction, ok)
	}
}

func TestFallRightWhenLeftBlocked(t *testing.T) {
	g := testGrid(t,
		"Wr ",
		"WWW",
	)
	id := entityAt(t, g, 1, 0)

	direction, ok := g.FallDirection(g.Entity(id))
	if !ok || direction != MoveRight {
		t.Fatalf("expected right roll, got %v ok=%v", direction, ok)
	}
}

func TestDirtAndExitBlockFalling(t *testing.T) {
	g := testGrid(t,
		"WrW",
		"X.W",
	)
	id := entityAt(t, g, 1, 0)

	if direction, ok := g.FallDirection(g.Entity(id)); ok {
		t.Fatalf("expected no fall over dirt, got %v", direction)
	}
}

func TestFreshFallerNeverSquashesPlayer(t *testing.T) {
	// Rock resting directly above the player with fallingSince == 0.
	g := testGrid(t,
		"WrW",
		"WPW",
	)
	id := entityAt(t, g, 1, 0)

	if direction, ok := g.FallDirection(g.Entity(id)); ok {
		t.Fatalf("fresh faller must not be eligible onto the player, got %v", direction)
	}

	res := g.Update()
	if res.PlayerCrushed {
		t.Fatal("player crushed by a rock that was not yet falling")
	}
	if got := g.Entity(id).FallingSince; got != 0 {
		t.Fatalf("FallingSince = %d, want 0", got)
	}
}

func TestFallingRockSquashesPlayer(t *testing.T) {
	// The rock falls one tick into the gap, then continues down onto the
	// player with fallingSince already 1.
	g := testGrid(t,
		"WrW",
		"W W",
		"WPW",
		"W W",
	)
	id := entityAt(t, g, 1, 0)

	res := g.Update()
	if res.PlayerCrushed {
		t.Fatal("crushed too early")
	}
	if got := g.Entity(id).FallingSince; got != 1 {
		t.Fatalf("FallingSince after first tick = %d, want 1", got)
	}

	// Eligibility check ahead of the second tick.
	player := entityAt(t, g, 1, 2)
	if !g.CheckCollision(id, player) {
		t.Fatal("expected collision between falling rock and player")
	}

	res = g.Update()
	if !res.PlayerCrushed {
		t.Fatal("expected the falling rock to crush the player")
	}
	if got := entityAt(t, g, 1, 2); got != id {
		t.Fatalf("player cell should hold the rock, holds entity %d", got)
	}
}

func TestFallingSinceResetsWhenBlocked(t *testing.T) {
	g := testGrid(t,
		"WrW",
		"W W",
		"WWW",
	)
	id := entityAt(t, g, 1, 0)

	g.Update() // falls into the gap, fallingSince 1
	res := g.Update()
	if got := g.Entity(id).FallingSince; got != 0 {
		t.Fatalf("FallingSince after blocked tick = %d, want 0", got)
	}
	if len(res.Moves) != 0 {
		t.Fatalf("blocked rock should not move, got %d moves", len(res.Moves))
	}
}

func TestRockRollsOffLedge(t *testing.T) {
	// Spec scenario: 5x1 row "..r..", off-grid-down blocked, left cell was
	// dug to empty. The rock rolls left and fallingSince becomes 1.
	g := testGrid(t, "W r W")
	id := entityAt(t, g, 2, 0)

	g.Update()

	if got := g.Entity(id).Pos; !got.Equal(C(1, 0)) {
		t.Fatalf("rock at %v, want (1,0)", got)
	}
	if got := g.Entity(id).FallingSince; got != 1 {
		t.Fatalf("FallingSince = %d, want 1", got)
	}
	if kind := g.TileAt(2, 0).Field().Kind; kind != FieldEmpty {
		t.Fatalf("vacated cell kind = %v, want Empty", kind)
	}
}

func TestSimultaneousFallsLastWriterWins(t *testing.T) {
	// Both rocks resolve into (1,1) within one tick: the top one straight
	// down, the lower-right one rolling left, both decisions made against
	// the pre-pass grid. Row-major scan emits the top rock's actions first,
	// so the rolling rock's occupy action wins the cell and the top rock's
	// record goes unreferenced.
	g := testGrid(t,
		"WrWW",
		"W rW",
		"WWWW",
	)
	roller := entityAt(t, g, 2, 1)

	g.Update()

	if got := entityAt(t, g, 1, 1); got != roller {
		t.Fatalf("cell (1,1) holds %d, want the rolling rock %d", got, roller)
	}
	if rocks := g.TilesWithEntity(EntityRock); len(rocks) != 1 {
		t.Fatalf("expected a single rock left on the board, got %d", len(rocks))
	}
	for _, pos := range []Coord{C(1, 0), C(2, 1)} {
		if kind := g.TileAt(pos.X, pos.Y).Field().Kind; kind != FieldEmpty {
			t.Fatalf("cell %v kind = %v, want Empty", pos, kind)
		}
	}
}

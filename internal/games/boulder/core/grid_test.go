package core

import (
	"strings"
	"testing"
)

func TestNearestTileAfkYieldsNoTile(t *testing.T) {
	g := testGrid(t,
		"WWW",
		"WPW",
		"WWW",
	)
	if tile := g.NearestTile(C(1, 1), Afk); tile != nil {
		t.Fatalf("Afk query returned tile at %v, want nil", tile.Position())
	}
	if tile := g.NearestTile(C(1, 1), MoveUp); tile == nil || !tile.Position().Equal(C(1, 0)) {
		t.Fatal("directional query should return the neighbor")
	}
}

func TestTileAtBounds(t *testing.T) {
	g := testGrid(t, "P.")
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(2, 0), C(0, 1)} {
		if tile := g.TileAt(c.X, c.Y); tile != nil {
			t.Fatalf("TileAt%v = %v, want nil", c, tile.Position())
		}
	}
}

func TestObjectOnIgnoresDirtAndEmpty(t *testing.T) {
	g := testGrid(t, "P. W")
	if _, present := g.TileAt(1, 0).ObjectOn(); present {
		t.Fatal("dirt should not read as an object of interest")
	}
	if _, present := g.TileAt(2, 0).ObjectOn(); present {
		t.Fatal("empty should not read as an object of interest")
	}
	if field, present := g.TileAt(3, 0).ObjectOn(); !present || field.Kind != FieldWall {
		t.Fatal("wall should read as an object of interest")
	}
	// Dirt stays visible through the raw accessor.
	if kind := g.TileAt(1, 0).Field().Kind; kind != FieldDirt {
		t.Fatalf("raw field kind = %v, want Dirt", kind)
	}
}

func TestActionOrderIsLastWriterWins(t *testing.T) {
	g := testGrid(t, "P  ")
	g.ApplyActions([]Action{
		NewAction(C(2, 0), DirtField()),
		NewAction(C(2, 0), WallField()),
	})
	if kind := g.TileAt(2, 0).Field().Kind; kind != FieldWall {
		t.Fatalf("cell kind = %v, want Wall from the later action", kind)
	}
}

func TestGridRoundTrip(t *testing.T) {
	rows := []string{
		"WWWWW",
		"W.rdW",
		"WP Xq",
	}
	g := NewGrid(5, 3, rows, C(1, 2), 5, 3)

	want := []string{
		"WWWWW",
		"W.rdW",
		"WP X ", // 'q' is not a known character and reads back as empty
	}
	dump := g.Dump()
	for y, row := range want {
		for x, ch := range row {
			if got := g.Rune(g.TileAt(x, y)); got != ch {
				t.Fatalf("cell (%d,%d) = %q, want %q\n%s", x, y, got, ch, dump)
			}
		}
	}
}

func TestPlayerDigsDirt(t *testing.T) {
	g := testGrid(t,
		"WWWW",
		"WP.W",
		"WWWW",
	)
	g.SetPlayerDoing(MoveRight, true)
	res := g.Update()

	if res.DirtDug != 1 {
		t.Fatalf("DirtDug = %d, want 1", res.DirtDug)
	}
	if got := g.PlayerPosition(); !got.Equal(C(2, 1)) {
		t.Fatalf("player at %v, want (2,1)", got)
	}
	if kind := g.TileAt(1, 1).Field().Kind; kind != FieldEmpty {
		t.Fatalf("vacated cell kind = %v, want Empty", kind)
	}
}

func TestPlayerIntentPersistsUntilBlocked(t *testing.T) {
	g := testGrid(t,
		"WWWWW",
		"WP..W",
		"WWWWW",
	)
	g.SetPlayerDoing(MoveRight, true)

	g.Update()
	g.Update()
	if got := g.PlayerPosition(); !got.Equal(C(3, 1)) {
		t.Fatalf("player at %v, want (3,1) after two held-key ticks", got)
	}

	// Third tick hits the wall: zero actions, intent recorded as idle.
	g.Update()
	id := g.TilesWithEntity(EntityPlayer)[0]
	if got := g.Entity(id).Movement; got != Afk {
		t.Fatalf("player intent = %v, want Afk after a blocked tick", got)
	}
}

func TestPlayerCollectsDiamond(t *testing.T) {
	g := testGrid(t,
		"WWWW",
		"WPdW",
		"WWWW",
	)
	g.SetPlayerDoing(MoveRight, true)
	res := g.Update()

	if res.DiamondsCollected != 1 {
		t.Fatalf("DiamondsCollected = %d, want 1", res.DiamondsCollected)
	}
	if got := g.PlayerPosition(); !got.Equal(C(2, 1)) {
		t.Fatalf("player at %v, want (2,1)", got)
	}
	if left := g.TilesWithEntity(EntityDiamond); len(left) != 0 {
		t.Fatalf("diamond still on the board: %d", len(left))
	}
}

func TestPlayerPushesRock(t *testing.T) {
	g := testGrid(t,
		"WWWWW",
		"WPr W",
		"WWWWW",
	)
	g.SetPlayerDoing(MoveRight, true)
	g.Update()

	if got := g.PlayerPosition(); !got.Equal(C(2, 1)) {
		t.Fatalf("player at %v, want (2,1)", got)
	}
	rock := g.TilesWithEntity(EntityRock)
	if len(rock) != 1 || !g.Entity(rock[0]).Pos.Equal(C(3, 1)) {
		t.Fatalf("rock not pushed to (3,1)")
	}
}

func TestPushBlockedByOccupiedCell(t *testing.T) {
	g := testGrid(t,
		"WWWWW",
		"WPrrW",
		"WWWWW",
	)
	g.SetPlayerDoing(MoveRight, true)
	g.Update()

	if got := g.PlayerPosition(); !got.Equal(C(1, 1)) {
		t.Fatalf("player at %v, want to stay at (1,1)", got)
	}
}

func TestPushNeverVertical(t *testing.T) {
	g := testGrid(t,
		"WWW",
		"WrW",
		"WPW",
		"W W",
		"WWW",
	)
	g.SetPlayerDoing(MoveUp, true)
	g.Update()

	if got := g.PlayerPosition(); !got.Equal(C(1, 2)) {
		t.Fatalf("player at %v, want to stay at (1,2)", got)
	}
}

func TestCancelPushClearsFlag(t *testing.T) {
	g := testGrid(t,
		"WWWWW",
		"WPr W",
		"WWWWW",
	)
	g.SetPlayerDoing(MoveRight, false)
	g.Update()

	// Without the push flag the rock blocks the move entirely.
	if got := g.PlayerPosition(); !got.Equal(C(1, 1)) {
		t.Fatalf("player at %v, want to stay at (1,1)", got)
	}
}

func TestPlayerReachesExit(t *testing.T) {
	g := testGrid(t,
		"WWWW",
		"WPXW",
		"WWWW",
	)
	g.SetPlayerDoing(MoveRight, true)
	res := g.Update()

	if !res.PlayerExited {
		t.Fatal("expected PlayerExited")
	}
}

func TestRocksResolveBeforePlayer(t *testing.T) {
	// The rock falls into the cell the player walks toward within the same
	// tick. Because the rock pass applies first, the player's move is
	// decided against the rock's new position and is blocked.
	g := testGrid(t,
		"WWrW",
		"WP W",
		"WWWW",
	)
	g.SetPlayerDoing(MoveRight, true)
	g.Update()

	if got := g.PlayerPosition(); !got.Equal(C(1, 1)) {
		t.Fatalf("player at %v, want to stay at (1,1)", got)
	}
	rock := g.TilesWithEntity(EntityRock)
	if len(rock) != 1 || !g.Entity(rock[0]).Pos.Equal(C(2, 1)) {
		t.Fatal("rock should have fallen to (2,1) first")
	}
}

func TestMissingPlayerPanics(t *testing.T) {
	g := testGrid(t,
		"WWWW",
		"WP W",
		"WWWW",
	)
	// Corrupt the state behind the grid's back.
	g.TileAt(1, 1).SetObjectOn(EmptyField())

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on the missing player tile")
		}
	}()
	g.Update()
}

func TestDumpShape(t *testing.T) {
	g := testGrid(t,
		"WWW",
		"WPW",
		"WWW",
	)
	dump := g.Dump()
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != 4 { // header + 3 rows
		t.Fatalf("dump has %d lines, want 4:\n%s", len(lines), dump)
	}
	if lines[2] != "WPW" {
		t.Fatalf("middle row = %q, want WPW", lines[2])
	}
}

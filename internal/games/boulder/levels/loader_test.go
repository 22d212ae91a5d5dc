package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdevolde/bouldertui/internal/games/boulder/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder/levels/formats"
)

const sampleCave = `4 6
1 1
0
WWWWWW
WP.rdW
W...XW
WWWWWW
`

func TestParseBBCFFRoundTrip(t *testing.T) {
	parsed, err := formats.ParseBBCFF([]byte(sampleCave))
	if err != nil {
		t.Fatalf("ParseBBCFF: %v", err)
	}
	if parsed.Width != 6 || parsed.Height != 4 {
		t.Fatalf("size %dx%d, want 6x4", parsed.Width, parsed.Height)
	}
	if !parsed.Player.Equal(core.C(1, 1)) {
		t.Fatalf("player %v, want (1,1)", parsed.Player)
	}

	// Constructing a grid and reading every cell back must match the
	// character-to-field mapping of the source exactly.
	g := core.NewGrid(parsed.Width, parsed.Height, parsed.Rows, parsed.Player, parsed.Width, parsed.Height)
	checks := []struct {
		x, y int
		kind core.FieldKind
	}{
		{0, 0, core.FieldWall},
		{1, 1, core.FieldEntity}, // player
		{2, 1, core.FieldDirt},
		{3, 1, core.FieldEntity}, // rock
		{4, 1, core.FieldEntity}, // diamond
		{4, 2, core.FieldExit},
		{1, 2, core.FieldDirt},
	}
	for _, c := range checks {
		if kind := g.TileAt(c.x, c.y).Field().Kind; kind != c.kind {
			t.Errorf("cell (%d,%d) kind = %v, want %v", c.x, c.y, kind, c.kind)
		}
	}
	if rocks := g.TilesWithEntity(core.EntityRock); len(rocks) != 1 {
		t.Fatalf("rocks = %d, want 1", len(rocks))
	}
	if diamonds := g.TilesWithEntity(core.EntityDiamond); len(diamonds) != 1 {
		t.Fatalf("diamonds = %d, want 1", len(diamonds))
	}
}

func TestParseBBCFFMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"missing player line", "4 6"},
		{"bad size", "four 6\n1 1\n0\n"},
		{"bad player", "4 6\n1 one\n0\n"},
		{"zero size", "0 0\n1 1\n0\n"},
	}
	for _, tc := range cases {
		if _, err := formats.ParseBBCFF([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: test_cave
name: Test Cave
size: {w: 4, h: 3}
player: {x: 1, y: 1}
rows:
  - "WWWW"
  - "WPdW"
  - "WWWW"
`)
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if parsed.ID != "test_cave" || parsed.Width != 4 || parsed.Height != 3 {
		t.Fatalf("unexpected parse result: %+v", parsed)
	}
	if !parsed.Player.Equal(core.C(1, 1)) {
		t.Fatalf("player %v, want (1,1)", parsed.Player)
	}
}

func TestLoaderScansDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b_cave.bbcff": sampleCave,
		"a_cave.bbcff": sampleCave,
		"notes.txt":    "not a cave",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	caves, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(caves) != 2 {
		t.Fatalf("loaded %d caves, want 2", len(caves))
	}
	if caves[0].ID != "a_cave" || caves[1].ID != "b_cave" {
		t.Fatalf("caves not sorted by ID: %s, %s", caves[0].ID, caves[1].ID)
	}
}

func TestLoadBuiltin(t *testing.T) {
	caves, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	if len(caves) == 0 {
		t.Fatal("no builtin caves")
	}
	for _, cave := range caves {
		g := cave.ToGrid(cave.Width, cave.Height)
		if players := g.TilesWithEntity(core.EntityPlayer); len(players) != 1 {
			t.Errorf("cave %s has %d players, want 1", cave.ID, len(players))
		}
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	caves, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(caves) == 0 {
		t.Fatal("expected the builtin fallback")
	}
}

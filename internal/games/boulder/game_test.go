package boulder

import (
	"strings"
	"testing"

	platformcore "github.com/mdevolde/bouldertui/internal/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder/levels"
)

// newTestGame builds a game running a single crafted cave instead of the
// builtin set.
func newTestGame(t *testing.T, rows []string, player core.Coord) *Game {
	t.Helper()

	g := New()
	g.Reset(platformcore.RuntimeConfig{
		Seed:    1,
		ScreenW: 80,
		ScreenH: 24,
	})
	if g.gameOver {
		t.Fatal("game should not start in game over state")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g.allLevels = []levels.Level{{
		ID:     "test",
		Name:   "test",
		Width:  width,
		Height: len(rows),
		Player: player,
		Rows:   rows,
	}}
	g.levelIndex = 0
	g.score = 0
	g.diamonds = 0
	g.loadCurrentLevel()
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := platformcore.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := platformcore.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i == 20 {
			input.Set(platformcore.ActionRight)
		}
		if i == 60 {
			input.Set(platformcore.ActionDown)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch: %+v vs %+v", snap1, snap2)
	}
}

func TestCaveStepCadence(t *testing.T) {
	g := New()
	g.Reset(platformcore.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if g.grid == nil {
		t.Fatal("grid should be built after Reset")
	}

	interval := g.cfg.Gameplay.StepEveryTicks
	if interval <= 0 {
		t.Fatalf("invalid step interval %d", interval)
	}

	input := platformcore.NewInputFrame()
	for i := 0; i < interval; i++ {
		g.Step(input)
	}

	if g.grid.Tick() != 1 {
		t.Errorf("Expected 1 cave step after %d platform ticks, got %d", interval, g.grid.Tick())
	}
}

func TestDiamondScoring(t *testing.T) {
	g := newTestGame(t, []string{
		"WWWWW",
		"WPd W",
		"WWWWW",
	}, core.C(1, 1))

	g.grid.SetPlayerDoing(core.MoveRight, true)
	g.stepCave()

	if g.diamonds != 1 {
		t.Fatalf("Expected 1 collected diamond, got %d", g.diamonds)
	}
	if g.score != g.cfg.Gameplay.DiamondPoints {
		t.Errorf("Expected score %d, got %d", g.cfg.Gameplay.DiamondPoints, g.score)
	}
	if g.DiamondsLeft() != 0 {
		t.Errorf("Expected no diamonds left, got %d", g.DiamondsLeft())
	}
}

func TestFallingRockEndsGame(t *testing.T) {
	g := newTestGame(t, []string{
		"WWWWW",
		"W r W",
		"W   W",
		"W P W",
		"WWWWW",
	}, core.C(2, 3))

	// First step: the rock starts falling into the gap above the player.
	g.stepCave()
	if g.gameOver {
		t.Fatal("fresh faller should not end the game")
	}

	// Second step: the already-falling rock lands on the player.
	g.stepCave()

	if !g.crushed || !g.gameOver {
		t.Error("Game should be over after the rock lands on the player")
	}
	if snap := g.Snapshot(); snap.State != StateCrushed {
		t.Errorf("State should be crushed, got %s", snap.State)
	}
}

func TestExitClearsLevel(t *testing.T) {
	g := newTestGame(t, []string{
		"WWWWW",
		"WPX W",
		"WWWWW",
	}, core.C(1, 1))

	g.grid.SetPlayerDoing(core.MoveRight, true)
	g.stepCave()

	if !g.levelCleared {
		t.Fatal("Level should be cleared after reaching the exit")
	}
	if g.score != g.cfg.Gameplay.ExitBonus {
		t.Errorf("Expected exit bonus %d, got score %d", g.cfg.Gameplay.ExitBonus, g.score)
	}

	// Only one cave in the test set, so advancing wins the run.
	g.advanceLevel()
	if !g.won {
		t.Error("Clearing the last cave should win the run")
	}
	if snap := g.Snapshot(); snap.State != StateWin {
		t.Errorf("State should be win, got %s", snap.State)
	}
}

func TestPauseStopsCave(t *testing.T) {
	g := New()
	g.Reset(platformcore.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionPause)
	g.Step(input)

	if !g.paused {
		t.Fatal("Game should be paused")
	}

	before := g.grid.Tick()
	input.Clear()
	for i := 0; i < 50; i++ {
		g.Step(input)
	}
	if g.grid.Tick() != before {
		t.Error("Cave should not advance while paused")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(platformcore.RuntimeConfig{
		Seed:    333,
		ScreenW: 6, // Too small
		ScreenH: 4, // Too small
	})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}

	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Errorf("State should be paused_small_window, got %s", snap.State)
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "boulder" {
		t.Errorf("ID should be 'boulder', got %s", g.ID())
	}
	if g.Title() != "Boulder" {
		t.Errorf("Title should be 'Boulder', got %s", g.Title())
	}
}

func TestBuiltinCavesAvailable(t *testing.T) {
	count := LevelCount()
	if count < 2 {
		t.Errorf("Expected at least 2 builtin caves, got %d", count)
	}
	names := LevelNames()
	if len(names) != count {
		t.Errorf("Expected %d cave names, got %d", count, len(names))
	}
	for i, name := range names {
		if name == "" {
			t.Errorf("Cave %d has empty name", i)
		}
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(platformcore.RuntimeConfig{
		Seed:    444,
		ScreenW: 80,
		ScreenH: 24,
	})

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Error("Rendered screen should not be empty")
	}
	if !strings.Contains(content, "Boulder") {
		t.Error("HUD should contain 'Boulder'")
	}
	if !strings.Contains(content, "@") {
		t.Error("Screen should contain the player glyph")
	}
}

func TestCanvasTracksPlayerZone(t *testing.T) {
	// A cave wider than the canvas splits into zones; walking across the
	// seam must swap the displayed zone.
	rows := []string{
		"WWWWWWWWWW",
		"WP       W",
		"WWWWWWWWWW",
	}
	g := newTestGame(t, rows, core.C(1, 1))

	// Shrink the canvas below the map width and rebuild.
	g.canvasW, g.canvasH = 5, 3
	g.grid = g.allLevels[0].ToGrid(g.canvasW, g.canvasH)
	g.canvas = newZoneCanvas(g.canvasW, g.canvasH)
	g.grid.SetRenderer(g.canvas)
	g.grid.RenderPlayerZone()

	if g.canvas.zone.Index != 0 {
		t.Fatalf("Expected starting zone 0, got %d", g.canvas.zone.Index)
	}

	g.grid.SetPlayerDoing(core.MoveRight, true)
	for i := 0; i < 5; i++ {
		g.grid.Update()
	}

	if got := g.grid.PlayerPosition(); got.X != 6 {
		t.Fatalf("Expected player at x=6, got %v", got)
	}
	if g.canvas.zone.Index != 1 {
		t.Errorf("Expected canvas to track zone 1, got %d", g.canvas.zone.Index)
	}
}

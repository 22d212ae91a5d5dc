// Package boulder provides the falling-rock cave game for the platform.
package boulder

import (
	"fmt"
	"math/rand"

	"github.com/mdevolde/bouldertui/internal/config"
	platformcore "github.com/mdevolde/bouldertui/internal/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder/levels"
	"github.com/mdevolde/bouldertui/internal/registry"
)

// Game implements the boulder cave game on top of the pure simulation core.
// It owns the tick cadence, scoring, level progression and the zone canvas
// the grid draws into.
type Game struct {
	cfg  config.BoulderConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	grid      *core.Grid
	canvas    *zoneCanvas
	level     levels.Level
	allLevels []levels.Level

	levelIndex int

	// Screen dimensions and layout
	screenW    int
	screenH    int
	hudHeight  int
	canvasW    int
	canvasH    int
	mapOffsetX int
	mapOffsetY int

	// Status
	tick       uint64
	stepTicker int
	score      int
	diamonds   int // collected across the run
	gameOver   bool
	crushed    bool
	won        bool
	paused     bool
	tooSmall   bool

	// Level clear animation
	levelCleared    bool
	levelClearTicks int
}

// Package-level variables applied by the CLI before game creation
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

func init() {
	registry.Register("boulder", func() registry.Game {
		return New()
	})
}

// New creates a new boulder game.
func New() *Game {
	return &Game{
		hudHeight: 2,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "boulder"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Boulder"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.stepTicker = 0
	g.score = 0
	g.diamonds = 0
	g.gameOver = false
	g.crushed = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0

	cfg, err := config.LoadBoulder(configPath)
	if err != nil {
		cfg = config.DefaultBoulderConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBoulderPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	allLevels, err := levels.Load(cfg.Levels.Dir)
	if err != nil || len(allLevels) == 0 {
		g.gameOver = true
		return
	}
	g.allLevels = allLevels

	// Apply selected start level
	if selectedStartLevel > 0 && selectedStartLevel <= len(allLevels) {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadCurrentLevel()
}

// loadCurrentLevel builds the grid for the level at levelIndex and attaches
// a fresh zone canvas to it.
func (g *Game) loadCurrentLevel() {
	if g.levelIndex >= len(g.allLevels) {
		g.won = true
		g.gameOver = true
		return
	}

	g.level = g.allLevels[g.levelIndex]
	g.levelCleared = false
	g.stepTicker = 0

	g.calculateLayout()
	if g.tooSmall {
		return
	}

	g.grid = g.level.ToGrid(g.canvasW, g.canvasH)
	g.canvas = newZoneCanvas(g.canvasW, g.canvasH)
	g.grid.SetRenderer(g.canvas)
	g.grid.RenderPlayerZone()
}

// calculateLayout sizes the zone canvas to the playable screen area and
// centers it. The canvas never exceeds the map, so small caves show whole.
func (g *Game) calculateLayout() {
	availW := g.screenW - 2
	availH := g.screenH - g.hudHeight - 1

	if availW < 8 || availH < 4 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.canvasW = platformcore.Min(availW, g.level.Width)
	g.canvasH = platformcore.Min(availH, g.level.Height)

	g.mapOffsetX = (g.screenW - g.canvasW) / 2
	g.mapOffsetY = g.hudHeight + (availH-g.canvasH)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle restart
	if input.Has(platformcore.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	// Don't process if game over, paused, or too small
	if g.gameOver || g.won || g.paused || g.tooSmall || g.grid == nil {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 90 { // ~1.5 seconds at 60 FPS
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.processInput(input)

	// Advance the cave on its own cadence, faster as difficulty rises.
	interval := g.diff.StepInterval(g.cfg.Gameplay.StepEveryTicks, g.score, int(g.tick))
	g.stepTicker++
	if g.stepTicker >= interval {
		g.stepTicker = 0
		g.stepCave()
	}

	return platformcore.StepResult{State: g.State()}
}

// processInput records the player's movement intent on the grid. Walking
// into a rock sideways counts as a push attempt; the intent stays recorded
// until the simulation finds the move blocked.
func (g *Game) processInput(input platformcore.InputFrame) {
	action, ok := input.Direction()
	if !ok {
		return
	}

	var movement core.Movement
	switch action {
	case platformcore.ActionUp:
		movement = core.MoveUp
	case platformcore.ActionDown:
		movement = core.MoveDown
	case platformcore.ActionLeft:
		movement = core.MoveLeft
	case platformcore.ActionRight:
		movement = core.MoveRight
	default:
		return
	}

	g.grid.SetPlayerDoing(movement, movement.Horizontal())
}

// stepCave runs one simulation step and folds its result into the score and
// level state.
func (g *Game) stepCave() {
	res := g.grid.Update()

	g.score += res.DiamondsCollected * g.cfg.Gameplay.DiamondPoints
	g.score += res.DirtDug * g.cfg.Gameplay.DirtPoints
	g.diamonds += res.DiamondsCollected

	switch {
	case res.PlayerCrushed:
		g.crushed = true
		g.gameOver = true
	case res.PlayerExited:
		g.score += g.cfg.Gameplay.ExitBonus
		g.levelCleared = true
		g.levelClearTicks = 0
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.allLevels) {
		g.won = true
	} else {
		g.loadCurrentLevel()
	}
}

// DiamondsLeft returns the number of diamonds still in the cave.
func (g *Game) DiamondsLeft() int {
	if g.grid == nil {
		return 0
	}
	return len(g.grid.TilesWithEntity(core.EntityDiamond))
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.grid == nil {
		g.renderOverlay(dst, "No caves found", "Check levels directory")
		return
	}

	g.canvas.blit(dst, g.mapOffsetX, g.mapOffsetY)

	// Draw overlays
	switch {
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Cave %d cleared!", g.levelIndex+1), g.level.Name)
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.crushed:
		g.renderOverlay(dst, "Crushed!", "Press R to restart")
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Boulder | Score: %d | Cave: %d/%d | Diamonds left: %d",
		g.score, g.levelIndex+1, len(g.allLevels), g.DiamondsLeft())
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	// Draw text
	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

func (g *Game) drawCenteredText(dst *platformcore.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// LevelCount returns the number of available caves.
func LevelCount() int {
	cfg, err := config.LoadBoulder(configPath)
	if err != nil {
		cfg = config.DefaultBoulderConfig()
	}
	caves, err := levels.Load(cfg.Levels.Dir)
	if err != nil {
		return 0
	}
	return len(caves)
}

// LevelNames returns the names of all caves.
func LevelNames() []string {
	cfg, err := config.LoadBoulder(configPath)
	if err != nil {
		cfg = config.DefaultBoulderConfig()
	}
	caves, err := levels.Load(cfg.Levels.Dir)
	if err != nil {
		return nil
	}
	names := make([]string, len(caves))
	for i, c := range caves {
		names[i] = c.Name
	}
	return names
}

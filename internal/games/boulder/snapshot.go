package boulder

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateCrushed      GameStateType = "crushed"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Level        int // Current level (1-indexed for display)
	Score        int
	Diamonds     int // Collected across the run
	DiamondsLeft int
	PlayerX      int
	PlayerY      int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.crushed:
		state = StateCrushed
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	playerX, playerY := 0, 0
	if g.grid != nil {
		pos := g.grid.PlayerPosition()
		playerX = pos.X
		playerY = pos.Y
	}

	return Snapshot{
		Tick:         g.tick,
		Level:        g.levelIndex + 1,
		Score:        g.score,
		Diamonds:     g.diamonds,
		DiamondsLeft: g.DiamondsLeft(),
		PlayerX:      playerX,
		PlayerY:      playerY,
		State:        state,
	}
}

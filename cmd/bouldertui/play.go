package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mdevolde/bouldertui/internal/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder"
	"github.com/mdevolde/bouldertui/internal/platform/tui"
	"github.com/mdevolde/bouldertui/internal/registry"
	"github.com/mdevolde/bouldertui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing directly, skipping the menu.

Controls:
  Arrows/WASD - Move and dig
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slow cave, gentle progression
  normal - Default pacing, progresses with score
  hard   - Fast cave from the start
  fixed  - No progression, stays at config's initial level

Examples:
  bouldertui play
  bouldertui play --level 3
  bouldertui play --difficulty hard
  bouldertui play --config ./my-caves.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Cave to start from (1-based, 0 = first)")
}

func runPlay(cmd *cobra.Command, args []string) {
	const gameID = "boulder"

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply flags before game creation
	boulder.SetConfigPath(flagConfig)
	boulder.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		if flagLevel > boulder.LevelCount() {
			fmt.Fprintf(os.Stderr, "Error: no such cave %d (have %d)\n", flagLevel, boulder.LevelCount())
			fmt.Fprintln(os.Stderr, "Run 'bouldertui caves' to see available caves.")
			os.Exit(1)
		}
		boulder.SetStartLevel(flagLevel)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// bouldertui is a falling-rock cave puzzle game played in the terminal.
//
// Usage:
//
//	bouldertui play            - Play the game
//	bouldertui menu            - Start the interactive menu
//	bouldertui caves           - List available caves
//	bouldertui serve           - Start SSH server for remote play
//	bouldertui scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bouldertui/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/mdevolde/bouldertui/internal/games/boulder"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bouldertui",
	Short: "Boulder TUI - Dig for diamonds in your terminal",
	Long: `Boulder TUI is a terminal rendition of the classic falling-rock
cave puzzle: dig through dirt, collect diamonds, dodge the rocks
and reach the exit before one of them lands on your head.

Available commands:
  caves    - Show all built-in caves
  play     - Play directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  bouldertui caves
  bouldertui play
  bouldertui play --level 2 --difficulty hard
  bouldertui menu
  bouldertui serve --ssh :2222
  bouldertui scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bouldertui/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(cavesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

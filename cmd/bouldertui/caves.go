package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdevolde/bouldertui/internal/games/boulder"
)

var cavesCmd = &cobra.Command{
	Use:   "caves",
	Short: "List all available caves",
	Long:  `Shows the built-in caves and any caves loaded from the level directory.`,
	Run:   runCaves,
}

func runCaves(cmd *cobra.Command, args []string) {
	names := boulder.LevelNames()

	if len(names) == 0 {
		fmt.Println("No caves available.")
		return
	}

	fmt.Println("Available caves:")
	fmt.Println()

	for i, name := range names {
		fmt.Printf("  %2d  %s\n", i+1, name)
	}

	fmt.Println()
	fmt.Println("Run 'bouldertui play --level <n>' to start from a cave.")
}

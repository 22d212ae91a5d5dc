package config

import (
	_ "embed"
)

//go:embed defaults/boulder.yaml
var defaultBoulderYAML []byte

// DefaultBoulderConfig returns the default Boulder configuration.
func DefaultBoulderConfig() BoulderConfig {
	return BoulderConfig{
		Gameplay: BoulderGameplay{
			StepEveryTicks: 8, // ~7.5 cave steps/sec at 60 FPS
			DiamondPoints:  25,
			DirtPoints:     1,
			ExitBonus:      100,
		},
		Levels: BoulderLevels{
			Dir: "",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				StepReduction: 4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "boulder":
		return defaultBoulderYAML
	default:
		return nil
	}
}

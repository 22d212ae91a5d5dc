// Package config provides YAML-based game configuration loading and
// difficulty management for the platform.
package config

// BoulderConfig contains all configuration for the Boulder cave game.
type BoulderConfig struct {
	Gameplay   BoulderGameplay  `yaml:"gameplay"`
	Levels     BoulderLevels    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoulderGameplay defines scoring and timing parameters for the cave.
type BoulderGameplay struct {
	// StepEveryTicks is the number of platform ticks between cave updates.
	// Lower values make rocks fall and the player move faster.
	StepEveryTicks int `yaml:"step_every_ticks"`
	DiamondPoints  int `yaml:"diamond_points"`
	DirtPoints     int `yaml:"dirt_points"`
	ExitBonus      int `yaml:"exit_bonus"`
}

// BoulderLevels defines where cave files are loaded from.
type BoulderLevels struct {
	// Dir is an external directory of .bbcff/.yaml cave files.
	// When empty, the embedded caves are used.
	Dir string `yaml:"dir"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// StepReduction is how many ticks are shaved off the cave step
	// interval at maximum difficulty.
	StepReduction int `yaml:"step_reduction"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

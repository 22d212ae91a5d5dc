package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mdevolde/bouldertui/internal/games/boulder/core"
)

// YAMLLevel represents the YAML structure for a cave file. The rows use the
// same character set as the text format.
type YAMLLevel struct {
	ID     string            `yaml:"id"`
	Name   string            `yaml:"name"`
	Size   YAMLSize          `yaml:"size"`
	Player YAMLCoord         `yaml:"player"`
	Rows   []string          `yaml:"rows"`
	Meta   map[string]string `yaml:"meta,omitempty"`
}

// YAMLSize represents cave dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLCoord represents a tile coordinate.
type YAMLCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML cave file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.Size.W <= 0 || yl.Size.H <= 0 {
		return Level{}, fmt.Errorf("yaml: invalid size %dx%d", yl.Size.W, yl.Size.H)
	}

	return Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  yl.Size.W,
		Height: yl.Size.H,
		Player: core.C(yl.Player.X, yl.Player.Y),
		Rows:   yl.Rows,
		Meta:   yl.Meta,
	}, nil
}

package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name,omitempty"`
	Delay int      `yaml:"delay"`
	Grid  []string `yaml:"grid"`
	Pipes string   `yaml:"pipes,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Grid) == 0 {
		return Level{}, core.MapError{Code: core.CodeBadDims, Message: "Map size must be at least 2x2!"}
	}

	props, err := BuildProperties(yl.Grid, len([]rune(yl.Grid[0])), yl.Delay, yl.Pipes)
	if err != nil {
		return Level{}, err
	}
	return Level{ID: yl.ID, Name: yl.Name, Props: props}, nil
}

// MarshalYAML encodes a level in the YAML format.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:    l.ID,
		Name:  l.Name,
		Delay: l.Props.Delay,
		Grid:  GridLines(l.Props),
		Pipes: PipeLine(l.Props.Pipes),
	}
	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

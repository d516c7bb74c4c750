package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultPipesYAML []byte

// DefaultPipesConfig returns the default pipes configuration.
func DefaultPipesConfig() PipesConfig {
	return PipesConfig{
		Grid: GridConfig{
			Rows: 8,
			Cols: 8,
		},
		Flow: FlowConfig{
			Delay:     10,
			Cadence:   5,
			TickMilli: 1000,
		},
		Queue: QueueConfig{
			Size: 5,
		},
		Paths: PathsConfig{
			Levels: "levels",
		},
	}
}

// Package config provides YAML-based configuration loading and difficulty
// presets for pipes.
package config

// PipesConfig contains all configuration for a pipes session.
type PipesConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Flow  FlowConfig  `yaml:"flow"`
	Queue QueueConfig `yaml:"queue"`
	Paths PathsConfig `yaml:"paths"`
}

// GridConfig is the interior size of generated maps.
type GridConfig struct {
	Rows int `yaml:"rows" env:"PIPES_ROWS"`
	Cols int `yaml:"cols" env:"PIPES_COLS"`
}

// FlowConfig defines the water timing.
// Delay applies to generated maps only; level files carry their own.
type FlowConfig struct {
	Delay     int `yaml:"delay" env:"PIPES_DELAY"`
	Cadence   int `yaml:"cadence" env:"PIPES_FLOW_CADENCE"`
	TickMilli int `yaml:"tick_ms" env:"PIPES_TICK_MS"`
}

// QueueConfig defines the upcoming pipe queue.
type QueueConfig struct {
	Size int `yaml:"size" env:"PIPES_QUEUE_SIZE"`
}

// PathsConfig locates files used by the CLI. Empty values fall back to
// locations under ~/.pipes.
type PathsConfig struct {
	Levels string `yaml:"levels" env:"PIPES_LEVELS_DIR"`
	DB     string `yaml:"db" env:"PIPES_DB"`
	Log    string `yaml:"log" env:"PIPES_LOG"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset returns the preset named s. The empty string is normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	}
	return "", false
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadPipes loads the pipes configuration, then applies PIPES_* environment
// overrides.
// Search order: customPath -> ~/.pipes/configs/pipes.yaml -> ./configs/pipes.yaml -> embedded default
func LoadPipes(customPath string) (PipesConfig, error) {
	cfg, err := loadPipesFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

func loadPipesFile(customPath string) (PipesConfig, error) {
	cfg := DefaultPipesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pipes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pipes.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPipesYAML, &cfg); err != nil {
		return DefaultPipesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseEnv loads PIPES_* environment variables into target. Unset variables
// leave fields untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// normalize replaces non-positive values with defaults.
func (c *PipesConfig) normalize() {
	def := DefaultPipesConfig()
	if c.Grid.Rows < 1 {
		c.Grid.Rows = def.Grid.Rows
	}
	if c.Grid.Cols < 1 {
		c.Grid.Cols = def.Grid.Cols
	}
	if c.Flow.Delay < 1 {
		c.Flow.Delay = def.Flow.Delay
	}
	if c.Flow.Cadence < 1 {
		c.Flow.Cadence = def.Flow.Cadence
	}
	if c.Flow.TickMilli < 1 {
		c.Flow.TickMilli = def.Flow.TickMilli
	}
	if c.Queue.Size < 1 {
		c.Queue.Size = def.Queue.Size
	}
}

// TickInterval returns the time between timer ticks.
func (c PipesConfig) TickInterval() time.Duration {
	return time.Duration(c.Flow.TickMilli) * time.Millisecond
}

// DBPath returns the run record database path, ~/.pipes/pipes.db by default.
func (p PathsConfig) DBPath() string {
	if p.DB != "" {
		return p.DB
	}
	return dataPath("pipes.db")
}

// LogPath returns the log file used while the terminal UI runs,
// ~/.pipes/pipes.log by default.
func (p PathsConfig) LogPath() string {
	if p.Log != "" {
		return p.Log
	}
	return dataPath("pipes.log")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pipes", "configs", filename)
}

// dataPath returns filename under ~/.pipes, or under the working directory
// if home is unavailable.
func dataPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filename
	}
	return filepath.Join(home, ".pipes", filename)
}

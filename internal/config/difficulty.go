package config

// ApplyPreset adjusts the flow timing for a difficulty preset. Normal keeps
// the loaded values.
func ApplyPreset(cfg *PipesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Flow.Delay = scale(cfg.Flow.Delay, 3, 2)
		cfg.Flow.Cadence = scale(cfg.Flow.Cadence, 3, 2)
	case DifficultyHard:
		cfg.Flow.Delay = scale(cfg.Flow.Delay, 1, 2)
		cfg.Flow.Cadence = scale(cfg.Flow.Cadence, 1, 2)
		cfg.Queue.Size = max(1, cfg.Queue.Size-2)
	}
}

// scale returns v*num/den, at least 1.
func scale(v, num, den int) int {
	return max(1, v*num/den)
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// loadConfig loads the config file, applies the difficulty preset and lets
// the global flags override both.
func loadConfig() (config.PipesConfig, error) {
	cfg, err := config.LoadPipes(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)

	if flagDBPath != "" {
		cfg.Paths.DB = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Paths.Levels = flagLevelsDir
	}
	return cfg, nil
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pipes",
	})
	logger.SetLevel(level)
	return logger, nil
}

// openLogFile opens the log file used while the terminal UI owns the screen.
func openLogFile(cfg config.PipesConfig) (*os.File, error) {
	path := cfg.Paths.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// openStore opens the run records database. A failure is logged and the
// game continues without records.
func openStore(cfg config.PipesConfig, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Paths.DBPath())
	if err != nil {
		logger.Warn("could not open records database", "err", err)
		return nil
	}
	return store
}

// runtimeConfig reads the terminal size.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	return rc
}

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// loadLevel resolves a play or run argument: an existing file path, or the
// id of a level in the levels directory.
func loadLevel(cfg config.PipesConfig, arg string) (levels.Level, error) {
	if _, err := os.Stat(arg); err == nil {
		return levels.LoadFile(arg)
	}
	return levels.NewLoader(cfg.Paths.Levels).LoadByID(arg)
}

// loadCampaignLevels loads every level of the levels directory. A missing
// directory yields no levels.
func loadCampaignLevels(cfg config.PipesConfig) ([]levels.Level, error) {
	if _, err := os.Stat(cfg.Paths.Levels); os.IsNotExist(err) {
		return nil, nil
	}
	return levels.NewLoader(cfg.Paths.Levels).LoadAll()
}

package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var flagRandom bool

var playCmd = &cobra.Command{
	Use:   "play [level|file]",
	Short: "Play pipes",
	Long: `Start playing. Without arguments a menu lists the levels of the levels
directory. A level id starts the campaign at that level, a file path plays
that map. After the last level, generated maps follow.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Place the next pipe
  S            - Skip the next pipe
  U            - Undo the last placement
  R            - Rotate the source (before the water flows)
  N            - Next level (after a win)
  Shift+R      - Restart the level
  Q/Esc        - Quit

Examples:
  pipes play
  pipes play lvl02
  pipes play ./my.map
  pipes play --random --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRandom, "random", false, "Play generated maps")
}

func runPlay(_ *cobra.Command, args []string) error {
	if !isTerminal() {
		return errors.New("play needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()
	theme := tui.ThemeByName(flagTheme)
	opts := []tui.GameOption{
		tui.WithStore(store),
		tui.WithGameLogger(logger),
		tui.WithTheme(theme),
	}

	switch {
	case flagRandom:
		return tui.Run(cfg, rc, opts...)

	case len(args) == 1:
		lvls, start, err := campaignFrom(cfg, args[0])
		if err != nil {
			return err
		}
		return tui.Run(cfg, rc, append(opts, tui.WithCampaign(lvls, start))...)
	}

	return runMenu(cfg, rc, store, logger, theme, opts)
}

// campaignFrom returns the levels to play for a play argument. A level id
// keeps the rest of the campaign after it, a file is played alone.
func campaignFrom(cfg config.PipesConfig, arg string) ([]levels.Level, int, error) {
	if _, err := os.Stat(arg); err == nil {
		lvl, err := levels.LoadFile(arg)
		if err != nil {
			return nil, 0, err
		}
		return []levels.Level{lvl}, 0, nil
	}

	lvls, err := loadCampaignLevels(cfg)
	if err != nil {
		return nil, 0, err
	}
	i := slices.IndexFunc(lvls, func(l levels.Level) bool { return l.ID == arg })
	if i < 0 {
		return nil, 0, fmt.Errorf("level not found: %s (run 'pipes levels' to list them)", arg)
	}
	return lvls, i, nil
}

// runMenu shows the level picker until the player quits.
func runMenu(cfg config.PipesConfig, rc core.RuntimeConfig, store *storage.Store, logger *log.Logger, theme tui.Theme, opts []tui.GameOption) error {
	lvls, err := loadCampaignLevels(cfg)
	if err != nil {
		return err
	}
	logger.Debug("levels loaded", "dir", cfg.Paths.Levels, "count", len(lvls))

	for {
		result, err := tui.RunMenu(lvls, store, theme, rc)
		if err != nil {
			return err
		}
		rc = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsRecord:
			goBack, err := tui.RunScoreboard(store, "", rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case result.Selection.Random:
			if err := tui.Run(cfg, rc, opts...); err != nil {
				return err
			}

		default:
			campaign := append(opts, tui.WithCampaign(lvls, result.Selection.Start))
			if err := tui.Run(cfg, rc, campaign...); err != nil {
				return err
			}
		}
	}
}

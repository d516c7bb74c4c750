package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/core"
	engine "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
)

var (
	flagNewRows     int
	flagNewCols     int
	flagNewDelay    int
	flagNewName     string
	flagNewGenerate bool
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create or edit a map",
	Long: `Open the map editor on <file>. An existing file is loaded for editing,
otherwise a new map of --rows x --cols free tiles is created. The extension
picks the format: .map or .yaml.

With --generate a random playable map is written without opening the editor.

Editor controls:
  Arrows/hjkl  - Move the cursor
  W            - Wall
  C/Space      - Empty tile
  T            - Source (inside) or sink (on the border)
  R            - Rotate the source
  +/-          - Change the flow delay
  Ctrl+S       - Save
  Q/Esc        - Quit

Examples:
  pipes new ./levels/lvl10.map
  pipes new ./mine.yaml --rows 5 --cols 7 --delay 12
  pipes new ./random.map --generate --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().IntVar(&flagNewRows, "rows", 0, "Free rows inside the border (default from config)")
	newCmd.Flags().IntVar(&flagNewCols, "cols", 0, "Free columns inside the border (default from config)")
	newCmd.Flags().IntVar(&flagNewDelay, "delay", 0, "Ticks before the water flows (default from config)")
	newCmd.Flags().StringVar(&flagNewName, "name", "", "Level name (default: file name)")
	newCmd.Flags().BoolVar(&flagNewGenerate, "generate", false, "Write a generated map instead of opening the editor")
}

func runNew(_ *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows, cols, delay := cfg.Grid.Rows, cfg.Grid.Cols, cfg.Flow.Delay
	if flagNewRows > 0 {
		rows = flagNewRows
	}
	if flagNewCols > 0 {
		cols = flagNewCols
	}
	if flagNewDelay > 0 {
		delay = flagNewDelay
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := flagNewName
	if name == "" {
		name = id
	}

	if flagNewGenerate {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		props := engine.Generate(rows, cols, delay, engine.NewRand(seed))
		if err := levels.SaveFile(path, levels.Level{ID: id, Name: name, Props: props}); err != nil {
			return err
		}
		fmt.Printf("Generated %dx%d map written to %s\n", props.Rows, props.Cols, path)
		return nil
	}

	if !isTerminal() {
		return errors.New("the editor needs an interactive terminal")
	}

	ed := engine.NewEditor(rows+2, cols+2, delay)
	if _, err := os.Stat(path); err == nil {
		lvl, err := levels.LoadFile(path)
		if err != nil {
			return err
		}
		ed = engine.EditorFromProperties(lvl.Props)
		id = lvl.ID
		if flagNewName == "" {
			name = lvl.Name
		}
	}

	rc := runtimeConfig()
	saved, err := tui.RunEditor(ed, path, id, name, tui.ThemeByName(flagTheme), core.RuntimeConfig{ScreenW: rc.ScreenW, ScreenH: rc.ScreenH})
	if err != nil {
		return err
	}
	if saved {
		fmt.Printf("Map saved to %s\n", path)
	}
	return nil
}

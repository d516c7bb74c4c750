package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate map files",
	Long: `Load each map file and report whether it can be played. The command
fails when at least one file is invalid.

Examples:
  pipes check ./levels/*.map
  pipes check mine.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		lvl, err := levels.LoadFile(path)
		if err != nil {
			failed++
			var me engine.MapError
			if errors.As(err, &me) {
				fmt.Printf("%s  %s: %s %s\n", styleFail.Sprint("FAIL"), path, me.Message, styleSubtle.Sprintf("(%s)", me.Code))
			} else {
				fmt.Printf("%s  %s: %v\n", styleFail.Sprint("FAIL"), path, err)
			}
			continue
		}
		p := lvl.Props
		fmt.Printf("%s    %s: %s, %dx%d, delay %d, %d queued pipes\n", styleOK.Sprint("ok"), path, lvl.Name, p.Rows, p.Cols, p.Delay, len(p.Pipes))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d maps are invalid", failed, len(args))
	}
	return nil
}

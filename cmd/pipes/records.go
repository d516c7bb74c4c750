package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	flagRecordsLimit int
	flagRecordsPlain bool
	flagRecordsClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, for one level or for all of them. Wins
come first, then fewer steps, then fewer ticks. On a terminal the records
open in an interactive table unless --plain is set.

Examples:
  pipes records
  pipes records lvl01 --plain
  pipes records lvl01 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of runs to show")
	recordsCmd.Flags().BoolVar(&flagRecordsPlain, "plain", false, "Print a plain table")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete the runs of the level")
}

func runRecords(_ *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.Paths.DBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRecordsClear {
		if level == "" {
			return errors.New("--clear needs a level")
		}
		if err := store.ClearRuns(level); err != nil {
			return err
		}
		fmt.Printf("Runs of %s deleted.\n", level)
		return nil
	}

	if !flagRecordsPlain && isTerminal() {
		rc := runtimeConfig()
		_, err := tui.RunScoreboard(store, level, rc.ScreenW, rc.ScreenH)
		return err
	}

	return printRecords(store, level)
}

func printRecords(store *storage.Store, level string) error {
	runs, err := store.TopRuns(level, flagRecordsLimit)
	if err != nil {
		return err
	}

	title := "all levels"
	if level != "" {
		title = level
	}
	styleTitle.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game with 'pipes play' to record the first run!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-6s  %-5s  %-5s  %-5s  %s\n", "Rank", "Level", "Result", "Steps", "Undos", "Ticks", "Date")
	fmt.Printf("  %-4s  %-14s  %-6s  %-5s  %-5s  %-5s  %s\n", "----", "-----", "------", "-----", "-----", "-----", "----")

	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		result = resultStyle(r.Won).Sprintf("%-6s", result)
		fmt.Printf("  %-4d  %-14s  %s  %-5d  %-5d  %-5d  %s\n",
			i+1, r.LevelID, result, r.Steps, r.Undos, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if level != "" {
		stats, err := store.GetLevelStats(level)
		if err == nil && stats.Played > 0 {
			fmt.Println()
			fmt.Printf("Played %d, won %d", stats.Played, stats.Wins)
			if stats.Wins > 0 {
				fmt.Printf(", best %d steps", stats.BestSteps)
			}
			fmt.Println()
		}
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long:  `Shows the levels of the levels directory in campaign order, with the best recorded run of each.`,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lvls, err := loadCampaignLevels(cfg)
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		fmt.Printf("No levels found in %s.\n", cfg.Paths.Levels)
		return nil
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	best := map[string]int{}
	if store := openStore(cfg, logger); store != nil {
		defer store.Close()
		if stats, err := store.GetAllLevelStats(); err == nil {
			for id, s := range stats {
				best[id] = s.BestSteps
			}
		}
	}

	styleTitle.Printf("Levels in %s:\n", cfg.Paths.Levels)
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-5s  %-4s  %s\n", maxIDLen, "ID", "Size", "Delay", "Best", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %-4s  %s\n", maxIDLen, "--", "----", "-----", "----", "----")

	for _, l := range lvls {
		bestStr := "-"
		if b := best[l.ID]; b > 0 {
			bestStr = fmt.Sprint(b)
		}
		size := fmt.Sprintf("%dx%d", l.Props.Rows, l.Props.Cols)
		fmt.Printf("  %-*s  %-7s  %-5d  %-4s  %s\n", maxIDLen, l.ID, size, l.Props.Delay, bestStr, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'pipes play <id>' to play a level.")
	return nil
}

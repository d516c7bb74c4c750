// pipes is a terminal pipe-connection puzzle: lay pipes from the source to
// the sink before the water catches up.
//
// Usage:
//
//	pipes play [level|file]    - Play the campaign, one level or a map file
//	pipes new <file>           - Create or edit a map in the editor
//	pipes check <file>...      - Validate map files
//	pipes levels               - List the levels of the levels directory
//	pipes records [level]      - Show the best runs
//	pipes run <file> --moves   - Replay moves on a map without a terminal UI
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--db <path>          - Run records database (default: ~/.pipes/pipes.db)
//	--seed <value>       - RNG seed for generated maps and pipes
//	--difficulty <name>  - Flow timing preset: easy, normal, hard
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagLevelsDir  string
	flagSeed       int64
	flagDifficulty string
	flagLogLevel   string
	flagTheme      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Pipes - lead the water to the sink in your terminal",
	Long: `Pipes is a terminal puzzle. Pipe pieces arrive in a queue; place them on
the grid so the water leaving the source reaches the sink before the flow
catches up with you.

Available commands:
  play     - Play the campaign, a single level or a map file
  new      - Create or edit a map
  check    - Validate map files
  levels   - List available levels
  records  - View the best runs
  run      - Replay a list of moves headless

Examples:
  pipes play
  pipes play lvl01
  pipes play ./my.map --difficulty hard
  pipes new ./my.map --rows 6 --cols 6
  pipes run ./my.map --moves "p 1 2; p 1 3; s"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run records database (default ~/.pipes/pipes.db)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with level files")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(runCmd)
}

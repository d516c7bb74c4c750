package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	flagRunMoves     string
	flagRunMovesFile string
	flagRunTick      time.Duration
	flagRunTimeout   time.Duration
	flagRunRecord    bool
)

var runCmd = &cobra.Command{
	Use:   "run <level|file>",
	Short: "Replay moves on a map without a terminal UI",
	Long: `Play a map headless. Moves are applied in order while the flow timer runs,
then the water keeps flowing until the game is won or lost.

Moves are separated by ';' or new lines:
  place ROW COL  (or p ROW COL)  - Place the next pipe
  skip           (or s)          - Skip the next pipe
  undo           (or u)          - Undo the last placement
  rotate         (or r)          - Rotate the source

Examples:
  pipes run lvl01 --moves "p 1 2; p 1 3; p 1 4"
  pipes run ./my.map --moves-file moves.txt --tick 10ms`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunMoves, "moves", "", "Moves to apply")
	runCmd.Flags().StringVar(&flagRunMovesFile, "moves-file", "", "File with one move per line")
	runCmd.Flags().DurationVar(&flagRunTick, "tick", 50*time.Millisecond, "Time between timer ticks")
	runCmd.Flags().DurationVar(&flagRunTimeout, "timeout", time.Minute, "Give up after this long")
	runCmd.Flags().BoolVar(&flagRunRecord, "record", false, "Save the run to the records database")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	lvl, err := loadLevel(cfg, args[0])
	if err != nil {
		return err
	}

	moves, err := readMoves()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := pipes.NewFromProperties(lvl.Props,
		pipes.WithLogger(logger),
		pipes.WithTickInterval(flagRunTick),
		pipes.WithFlowCadence(cfg.Flow.Cadence),
		pipes.WithQueueSize(cfg.Queue.Size),
		pipes.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagRunTimeout)
	defer cancel()

	cmds := make(chan pipes.Command)
	go func() {
		defer close(cmds)
		for _, m := range moves {
			select {
			case cmds <- m:
			case <-ctx.Done():
				return
			}
		}
	}()

	status, err := g.Run(ctx, cmds)
	if err != nil {
		return fmt.Errorf("run %s: %w", lvl.ID, err)
	}

	fmt.Println(g.Map().String())
	fmt.Printf("%s: %s in %d steps, %d undos, %d ticks\n",
		lvl.ID, resultStyle(status == pipes.StatusWon).Sprint(status), g.Steps(), g.Undos(), g.Ticks())

	if flagRunRecord {
		store, err := storage.Open(cfg.Paths.DBPath())
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.SaveRun(storage.RunRecord{
			LevelID: lvl.ID,
			Won:     status == pipes.StatusWon,
			Steps:   g.Steps(),
			Undos:   g.Undos(),
			Ticks:   g.Ticks(),
		}); err != nil {
			return err
		}
	}
	return nil
}

// readMoves parses the moves given by --moves and --moves-file.
func readMoves() ([]pipes.Command, error) {
	lines := strings.Split(flagRunMoves, ";")
	if flagRunMovesFile != "" {
		f, err := os.Open(flagRunMovesFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			lines = append(lines, strings.Split(sc.Text(), ";")...)
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	var moves []pipes.Command
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := pipes.ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, c)
	}
	if len(moves) == 0 && flagRunMoves == "" && flagRunMovesFile == "" {
		return nil, errors.New("no moves given (use --moves or --moves-file)")
	}
	return moves, nil
}

package pipes

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a player action. The variants are PlaceCommand, SkipCommand,
// UndoCommand and RotateCommand.
type Command interface {
	command()
}

// PlaceCommand places the next pipe at (Row, Col).
type PlaceCommand struct {
	Row int
	Col int
}

// SkipCommand discards the next pipe.
type SkipCommand struct{}

// UndoCommand takes back the latest placement.
type UndoCommand struct{}

// RotateCommand turns the source clockwise.
type RotateCommand struct{}

func (PlaceCommand) command()  {}
func (SkipCommand) command()   {}
func (UndoCommand) command()   {}
func (RotateCommand) command() {}

// Apply performs cmd and reports whether it changed the game.
func (g *Game) Apply(cmd Command) bool {
	switch c := cmd.(type) {
	case PlaceCommand:
		return g.PlacePipe(c.Row, c.Col)
	case SkipCommand:
		if g.status != StatusPlaying {
			return false
		}
		g.SkipPipe()
		return true
	case UndoCommand:
		return g.UndoStep()
	case RotateCommand:
		return g.RotateSource()
	}
	return false
}

// ParseCommand reads one command from text: "place ROW COL", "skip", "undo"
// or "rotate".
func ParseCommand(s string) (Command, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "place", "p":
		if len(fields) != 3 {
			return nil, fmt.Errorf("place needs ROW COL: %q", s)
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid row %q: %w", fields[1], err)
		}
		col, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("invalid col %q: %w", fields[2], err)
		}
		return PlaceCommand{Row: row, Col: col}, nil
	case "skip", "s":
		return SkipCommand{}, nil
	case "undo", "u":
		return UndoCommand{}, nil
	case "rotate", "r":
		return RotateCommand{}, nil
	}
	return nil, fmt.Errorf("unknown command %q", fields[0])
}

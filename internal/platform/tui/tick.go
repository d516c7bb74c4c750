// Package tui provides the Bubble Tea front end for pipes.
// It bridges the flow timer into the update loop and draws the board.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	engine "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// eventMsg carries one timer event of a game into Update.
type eventMsg struct {
	game *pipes.Game
	ev   engine.Event
}

// waitForEvent returns a command that blocks until g emits a timer event.
// The command returns nil once ctx is cancelled.
func waitForEvent(ctx context.Context, g *pipes.Game) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-g.Events():
			return eventMsg{game: g, ev: ev}
		}
	}
}

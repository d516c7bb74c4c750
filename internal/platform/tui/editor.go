package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pipes/internal/core"
	engine "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
)

// EditorModel is the Bubble Tea model of the map editor.
type EditorModel struct {
	editor  *engine.Editor
	path    string
	id      string
	name    string
	cursor  engine.Coordinate
	keys    EditorKeyMap
	help    help.Model
	theme   Theme
	runtime core.RuntimeConfig

	message  string
	problem  string
	saved    bool
	quitting bool
}

// NewEditorModel creates an editor model that saves to path.
func NewEditorModel(ed *engine.Editor, path, id, name string, theme Theme, rc core.RuntimeConfig) EditorModel {
	h := help.New()
	h.Width = rc.ScreenW
	return EditorModel{
		editor:  ed,
		path:    path,
		id:      id,
		name:    name,
		cursor:  engine.C(min(1, ed.Rows()-1), min(1, ed.Cols()-1)),
		keys:    DefaultEditorKeyMap(),
		help:    h,
		theme:   theme,
		runtime: rc,
	}
}

// Init initializes the editor model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Wall):
		m.setTile(engine.TileWall)
	case key.Matches(msg, m.keys.Cell):
		m.setTile(engine.TileCell)
	case key.Matches(msg, m.keys.Termination):
		if !m.editor.SetTile(engine.TileTermination, m.cursor) {
			m.message = "Corners cannot hold the sink."
		}
		m.check()
	case key.Matches(msg, m.keys.Rotate):
		if !m.editor.ToggleSourceRotation() {
			m.message = "Place the source first."
		}
		m.check()
	case key.Matches(msg, m.keys.DelayUp):
		m.editor.SetDelay(m.editor.Delay() + 1)
		m.check()
	case key.Matches(msg, m.keys.DelayDown):
		m.editor.SetDelay(max(m.editor.Delay()-1, 0))
		m.check()
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *EditorModel) setTile(kind engine.TileKind) {
	m.editor.SetTile(kind, m.cursor)
	m.check()
}

// check refreshes the validity line shown under the board.
func (m *EditorModel) check() {
	m.problem = problemText(m.editor.Validate())
}

// save writes the map when it is valid.
func (m *EditorModel) save() {
	if err := m.editor.Validate(); err != nil {
		m.problem = problemText(err)
		m.message = "Map not saved."
		return
	}
	lvl := levels.Level{ID: m.id, Name: m.name, Props: m.editor.Properties()}
	if err := levels.SaveFile(m.path, lvl); err != nil {
		m.message = err.Error()
		return
	}
	m.saved = true
	m.problem = ""
	m.message = fmt.Sprintf("Saved to %s", m.path)
}

// problemText returns the player facing text of a validation error.
func problemText(err error) string {
	if err == nil {
		return ""
	}
	var me engine.MapError
	if errors.As(err, &me) {
		return me.Message
	}
	return err.Error()
}

func (m *EditorModel) moveCursor(dRow, dCol int) {
	m.cursor = engine.C(
		core.Clamp(m.cursor.Row+dRow, 0, m.editor.Rows()-1),
		core.Clamp(m.cursor.Col+dCol, 0, m.editor.Cols()-1),
	)
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	w, h := boardSize(m.editor)
	screen := core.NewScreen(w, h)
	drawBoard(screen, 0, 0, m.editor, m.cursor, true)

	t := m.theme
	var side strings.Builder
	side.WriteString(t.HUDTitle.Render("EDITOR"))
	side.WriteString("\n")
	side.WriteString(t.HUDLabel.Render(m.path))
	side.WriteString("\n")
	side.WriteString(t.HUDSeparator.Render(strings.Repeat("─", hudWidth-2)))
	side.WriteString("\n")
	side.WriteString(t.HUDLabel.Render("Size   "))
	side.WriteString(t.HUDValue.Render(fmt.Sprintf("%dx%d", m.editor.Rows(), m.editor.Cols())))
	side.WriteString("\n")
	side.WriteString(t.HUDLabel.Render("Delay  "))
	side.WriteString(t.HUDValue.Render(fmt.Sprint(m.editor.Delay())))
	side.WriteString("\n")
	side.WriteString(t.HUDLabel.Render("Cursor "))
	side.WriteString(t.HUDValue.Render(m.cursor.String()))
	side.WriteString("\n\n")
	if m.problem != "" {
		side.WriteString(t.Error.Render(m.problem))
		side.WriteString("\n")
	}
	if m.message != "" {
		side.WriteString(t.Message.Render(m.message))
	}

	board := t.Panel.Render(RenderScreen(screen))
	hud := t.Panel.Width(hudWidth).Render(side.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", hud)
	content := lipgloss.JoinVertical(lipgloss.Center, body, "", t.HUDControls.Render(m.help.View(m.keys)))
	if m.runtime.ScreenW <= 0 || m.runtime.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Saved reports whether the map was written at least once.
func (m EditorModel) Saved() bool {
	return m.saved
}

// RunEditor runs the map editor until the user quits.
// It reports whether the map was saved.
func RunEditor(ed *engine.Editor, path, id, name string, theme Theme, rc core.RuntimeConfig) (bool, error) {
	model := NewEditorModel(ed, path, id, name, theme, rc)
	model.check()

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(EditorModel)
	return ok && m.Saved(), nil
}

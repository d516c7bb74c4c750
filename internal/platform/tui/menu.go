package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// MenuSelection is what the player picked in the level menu.
type MenuSelection struct {
	Start  int  // campaign index to start at
	Random bool // play generated maps instead of the campaign
}

// MenuModel is the level picker. The first entry starts the campaign from the
// beginning, then one entry per level, then a generated map.
type MenuModel struct {
	levels       []levels.Level
	stats        map[string]*storage.LevelStats
	cursor       int
	scrollOffset int
	runtime      core.RuntimeConfig
	keys         MenuKeyMap
	help         help.Model
	theme        Theme

	selection *MenuSelection
	records   bool
	quitting  bool
}

// NewMenuModel creates a new level picker. store may be nil.
func NewMenuModel(lvls []levels.Level, store *storage.Store, theme Theme, rc core.RuntimeConfig) MenuModel {
	m := MenuModel{
		levels:  lvls,
		runtime: rc,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		theme:   theme,
	}
	m.help.Width = rc.ScreenW
	if store != nil {
		if stats, err := store.GetAllLevelStats(); err == nil {
			m.stats = stats
		}
	}
	return m
}

// itemCount is the number of selectable entries.
func (m MenuModel) itemCount() int {
	return len(m.levels) + 2
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.updateScroll()
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
			m.updateScroll()
		}
	case key.Matches(msg, m.keys.Records):
		m.records = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		switch {
		case m.cursor == 0:
			m.selection = &MenuSelection{Start: 0}
		case m.cursor == m.itemCount()-1:
			m.selection = &MenuSelection{Random: true}
		default:
			m.selection = &MenuSelection{Start: m.cursor - 1}
		}
		return m, tea.Quit
	}
	return m, nil
}

// visibleItems is the number of level entries that fit on screen.
func (m MenuModel) visibleItems() int {
	return max(m.runtime.ScreenH-12, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.runtime.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("P I P E S"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Lead the water to the sink"), width))
	b.WriteString("\n\n")

	end := min(m.scrollOffset+m.visibleItems(), m.itemCount())
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), width))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+m.itemLabel(i)), width))
		b.WriteString("\n")
	}
	if end < m.itemCount() {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.HUDControls.Render(m.help.View(m.keys)), width))
	b.WriteString("\n")
	return b.String()
}

// itemLabel returns the text of entry i.
func (m MenuModel) itemLabel(i int) string {
	switch {
	case i == 0:
		return "Start from the beginning"
	case i == m.itemCount()-1:
		return "Random map"
	}
	lvl := m.levels[i-1]
	label := fmt.Sprintf("%2d. %s", i, lvl.Name)
	if s, ok := m.stats[lvl.ID]; ok && s.Wins > 0 {
		label += fmt.Sprintf("  (best %d steps)", s.BestSteps)
	}
	return label
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection   *MenuSelection
	Config      core.RuntimeConfig
	WantsRecord bool
	Quit        bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(lvls []levels.Level, store *storage.Store, theme Theme, rc core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(lvls, store, theme, rc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rc}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rc, Quit: true}, nil
	}

	result := MenuResult{Config: m.runtime}
	switch {
	case m.records:
		result.WantsRecord = true
	case m.selection != nil:
		result.Selection = m.selection
	default:
		result.Quit = true
	}
	return result, nil
}

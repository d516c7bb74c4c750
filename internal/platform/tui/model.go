package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	engine "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// hudWidth is the inner width of the side panel.
const hudWidth = 24

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithStore records finished runs in store.
func WithStore(store *storage.Store) GameOption {
	return func(m *GameModel) { m.store = store }
}

// WithGameLogger sets the logger passed to every game.
func WithGameLogger(l *log.Logger) GameOption {
	return func(m *GameModel) { m.logger = l }
}

// WithTheme sets the panel styles.
func WithTheme(t Theme) GameOption {
	return func(m *GameModel) { m.theme = t }
}

// WithCampaign plays levels in order starting at start. Without a campaign
// every map is generated.
func WithCampaign(lvls []levels.Level, start int) GameOption {
	return func(m *GameModel) { m.campaign = levels.NewCampaign(lvls, start) }
}

// GameModel is the Bubble Tea model for playing pipes.
type GameModel struct {
	cfg      config.PipesConfig
	runtime  core.RuntimeConfig
	store    *storage.Store
	logger   *log.Logger
	theme    Theme
	keys     GameKeyMap
	help     help.Model
	campaign *levels.Campaign
	seed     int64

	game     *pipes.Game
	level    levels.Level
	cursor   engine.Coordinate
	ctx      context.Context
	cancel   context.CancelFunc
	message  string
	recorded bool
	quitting bool
	err      error
}

// NewGameModel creates a model and prepares its first level.
func NewGameModel(cfg config.PipesConfig, rc core.RuntimeConfig, opts ...GameOption) GameModel {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	m := GameModel{
		cfg:     cfg,
		runtime: rc,
		theme:   DefaultTheme(),
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		seed:    rc.Seed,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.help.Width = rc.ScreenW

	if m.campaign != nil {
		if lvl, ok := m.campaign.Current(); ok {
			m.err = m.load(lvl)
			return m
		}
	}
	m.err = m.loadGenerated()
	return m
}

// Init starts the flow timer of the first level.
func (m GameModel) Init() tea.Cmd {
	if m.game == nil {
		return tea.Quit
	}
	return m.start()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		return m.handleEvent(msg)
	}

	return m, nil
}

// handleEvent applies one timer event to the running game.
func (m GameModel) handleEvent(msg eventMsg) (tea.Model, tea.Cmd) {
	if msg.game != m.game {
		return m, nil
	}
	if m.game.Status() != pipes.StatusPlaying {
		return m, nil
	}
	if !m.game.Current(msg.ev) {
		return m, waitForEvent(m.ctx, m.game)
	}

	switch m.game.Dispatch(msg.ev) {
	case pipes.StatusWon:
		m.message = "The water reached the sink!"
		m.record()
		return m, nil
	case pipes.StatusLost:
		m.message = "The water spilled."
		m.record()
		return m, nil
	}
	return m, waitForEvent(m.ctx, m.game)
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.stop()
		m.quitting = true
		return m, tea.Quit
	}
	if m.game == nil {
		return m, nil
	}

	playing := m.game.Status() == pipes.StatusPlaying
	switch action {
	case core.ActionUp:
		m.moveCursor(-1, 0)
	case core.ActionDown:
		m.moveCursor(1, 0)
	case core.ActionLeft:
		m.moveCursor(0, -1)
	case core.ActionRight:
		m.moveCursor(0, 1)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionPlace:
		if playing {
			m.message = ""
			if !m.game.PlacePipe(m.cursor.Row, m.cursor.Col) {
				m.message = "A pipe cannot go there."
			}
		}
	case core.ActionSkip:
		if playing {
			m.game.SkipPipe()
			m.message = "Pipe skipped."
		}
	case core.ActionUndo:
		if playing {
			m.message = ""
			if !m.game.UndoStep() {
				m.message = "Nothing to undo."
			}
		}
	case core.ActionRotate:
		if playing {
			m.message = ""
			if !m.game.RotateSource() {
				m.message = "The source cannot turn any more."
			}
		}

	case core.ActionRestart:
		m.stop()
		if err := m.load(m.level); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.start()

	case core.ActionNext:
		if playing || (m.game.Status() == pipes.StatusLost && m.campaign != nil) {
			return m, nil
		}
		m.stop()
		if err := m.advance(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.start()
	}

	return m, nil
}

// advance loads the next campaign level, or a generated map once the campaign
// is over.
func (m *GameModel) advance() error {
	if m.campaign != nil && m.campaign.Advance() {
		lvl, _ := m.campaign.Current()
		return m.load(lvl)
	}
	return m.loadGenerated()
}

// load replaces the running game with a fresh game of lvl.
func (m *GameModel) load(lvl levels.Level) error {
	g, err := pipes.NewFromProperties(lvl.Props, m.gameOptions()...)
	if err != nil {
		return fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	m.level = lvl
	m.use(g)
	return nil
}

// loadGenerated replaces the running game with one on a new generated map.
func (m *GameModel) loadGenerated() error {
	m.seed++
	rows, cols := m.cfg.Grid.Rows, m.cfg.Grid.Cols
	g := pipes.New(rows, cols, append(m.gameOptions(), pipes.WithDelay(m.cfg.Flow.Delay))...)
	m.level = levels.Level{
		ID:    fmt.Sprintf("random-%dx%d", rows, cols),
		Name:  "Random map",
		Props: g.Properties(),
	}
	m.use(g)
	return nil
}

// use makes g the running game. Each game gets its own context so waits on
// a replaced game end.
func (m *GameModel) use(g *pipes.Game) {
	m.game = g
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.recorded = false
	m.message = ""
	if src := g.Map().Source(); src != nil {
		m.cursor = src.Coord()
	}
	m.logger.Info("level started", "level", m.level.ID, "rows", g.Map().Rows(), "cols", g.Map().Cols())
}

func (m *GameModel) gameOptions() []pipes.Option {
	return []pipes.Option{
		pipes.WithLogger(m.logger),
		pipes.WithTickInterval(m.cfg.TickInterval()),
		pipes.WithFlowCadence(m.cfg.Flow.Cadence),
		pipes.WithQueueSize(m.cfg.Queue.Size),
		pipes.WithSeed(m.seed),
	}
}

// start runs the flow timer of the current game and waits for its events.
func (m *GameModel) start() tea.Cmd {
	m.game.StartCountdown()
	return waitForEvent(m.ctx, m.game)
}

// stop halts the current game and releases the pending event wait.
func (m *GameModel) stop() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.game != nil {
		m.game.StopCountdown()
	}
}

// record saves the finished run once.
func (m *GameModel) record() {
	if m.recorded || m.store == nil {
		return
	}
	m.recorded = true
	_, err := m.store.SaveRun(storage.RunRecord{
		LevelID: m.level.ID,
		Won:     m.game.Status() == pipes.StatusWon,
		Steps:   m.game.Steps(),
		Undos:   m.game.Undos(),
		Ticks:   m.game.Ticks(),
	})
	if err != nil {
		m.logger.Warn("cannot save run", "level", m.level.ID, "err", err)
	}
}

func (m *GameModel) moveCursor(dRow, dCol int) {
	gm := m.game.Map()
	m.cursor = engine.C(
		core.Clamp(m.cursor.Row+dRow, 0, gm.Rows()-1),
		core.Clamp(m.cursor.Col+dCol, 0, gm.Cols()-1),
	)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.game == nil {
		return ""
	}

	gm := m.game.Map()
	w, h := boardSize(gm)
	screen := core.NewScreen(w, h)
	drawBoard(screen, 0, 0, gm, m.cursor, m.game.Status() == pipes.StatusPlaying)

	board := m.theme.Panel.Render(RenderScreen(screen))
	hud := m.theme.Panel.Width(hudWidth).Render(m.renderHUD())
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", hud)

	content := lipgloss.JoinVertical(lipgloss.Center, body, "", m.theme.HUDControls.Render(m.help.View(m.keys)))
	if m.runtime.ScreenW <= 0 || m.runtime.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// renderHUD renders the side panel with the level info and the pipe queue.
func (m GameModel) renderHUD() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.HUDTitle.Render(m.level.Name))
	b.WriteString("\n")
	if m.campaign != nil && m.campaign.Index() < m.campaign.Len() {
		b.WriteString(t.HUDLabel.Render(fmt.Sprintf("Level %d of %d", m.campaign.Index()+1, m.campaign.Len())))
		b.WriteString("\n")
	}
	b.WriteString(t.HUDSeparator.Render(strings.Repeat("─", hudWidth-2)))
	b.WriteString("\n")

	flow := "flowing"
	if left := m.game.Delay() - m.game.Ticks(); m.game.Distance() < 0 {
		flow = fmt.Sprintf("in %d", max(left, 0))
	}
	line := func(label string, value any) {
		b.WriteString(t.HUDLabel.Render(fmt.Sprintf("%-7s", label)))
		b.WriteString(t.HUDValue.Render(fmt.Sprint(value)))
		b.WriteString("\n")
	}
	line("Water", flow)
	line("Ticks", m.game.Ticks())
	line("Steps", m.game.Steps())
	line("Undos", m.game.Undos())

	b.WriteString("\n")
	b.WriteString(t.HUDLabel.Render("Next   "))
	for i, s := range m.game.Queue() {
		if i == 0 {
			b.WriteString(t.QueueNext.Render(string(s.Rune())))
			b.WriteString(" ")
			continue
		}
		b.WriteString(t.QueueRest.Render(string(s.Rune())))
	}
	b.WriteString("\n\n")

	switch m.game.Status() {
	case pipes.StatusWon:
		b.WriteString(t.Win.Render("YOU WIN"))
		b.WriteString("\n")
		b.WriteString(t.HUDControls.Render("n: next  R: replay"))
	case pipes.StatusLost:
		b.WriteString(t.Lose.Render("GAME OVER"))
		b.WriteString("\n")
		if m.campaign == nil {
			b.WriteString(t.HUDControls.Render("n: new map  R: retry"))
		} else {
			b.WriteString(t.HUDControls.Render("R: retry"))
		}
	}
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(t.Message.Render(m.message))
	}

	return b.String()
}

// Err returns the error that ended the session, if any.
func (m GameModel) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a game session.
func Run(cfg config.PipesConfig, rc core.RuntimeConfig, opts ...GameOption) error {
	model := NewGameModel(cfg, rc, opts...)
	if err := model.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(GameModel); ok {
		return m.Err()
	}
	return nil
}

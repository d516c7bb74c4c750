// Package pipes runs a game session: it owns the map, the pipe queue, the
// placement history and the flow timer, and applies player commands and timer
// events one at a time.
package pipes

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// Default interior size of generated maps.
const (
	DefaultRows = 8
	DefaultCols = 8
)

// ErrGameOver is returned when a finished game is run again.
var ErrGameOver = errors.New("pipes: game is over")

// Status is the outcome of a game so far.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Playing"
	}
}

type options struct {
	logger    *log.Logger
	interval  time.Duration
	cadence   int
	delay     int
	queueSize int
	seed      int64
	gen       core.Generator
}

// Option configures a Game.
type Option func(*options)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTickInterval sets the time between timer ticks.
func WithTickInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithFlowCadence sets the number of ticks between flow steps.
func WithFlowCadence(n int) Option {
	return func(o *options) { o.cadence = n }
}

// WithDelay sets the flow delay of generated maps.
func WithDelay(n int) Option {
	return func(o *options) { o.delay = n }
}

// WithQueueSize sets the number of upcoming pipes.
func WithQueueSize(n int) Option {
	return func(o *options) { o.queueSize = n }
}

// WithSeed seeds map generation and the default pipe generator.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithGenerator replaces the random pipe generator.
func WithGenerator(g core.Generator) Option {
	return func(o *options) { o.gen = g }
}

func buildOptions(opts []Option) options {
	o := options{
		interval:  core.DefaultTickInterval,
		cadence:   core.DefaultFlowCadence,
		delay:     core.DefaultFlowDelay,
		queueSize: core.DefaultQueueSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.gen == nil {
		o.gen = core.NewRandomGenerator(o.seed)
	}
	if o.delay < 1 {
		o.delay = core.DefaultFlowDelay
	}
	return o
}

// Game is a single play session. It is not safe for concurrent use: drive it
// from one goroutine, either through Run or by calling Dispatch with the
// events read from Events.
type Game struct {
	delay   int
	m       *core.Map
	queue   *core.PipeQueue
	history *core.CellStack
	timer   *core.FlowTimer
	logger  *log.Logger

	steps    int
	ticks    int
	distance int
	status   Status

	tickCallbacks []func(core.TickEvent)
	flowCallbacks []func(core.FlowEvent)
}

// New creates a game on a generated map with a rows x cols interior.
func New(rows, cols int, opts ...Option) *Game {
	o := buildOptions(opts)
	props := core.Generate(rows, cols, o.delay, core.NewRand(o.seed))
	g, err := newGame(props, o)
	if err != nil {
		// Generate only builds valid maps.
		panic(err)
	}
	return g
}

// NewFromProperties creates a game from map properties. Nothing is built when
// the properties are invalid.
func NewFromProperties(p core.Properties, opts ...Option) (*Game, error) {
	return newGame(p, buildOptions(opts))
}

func newGame(p core.Properties, o options) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m, err := core.NewMap(p.Rows, p.Cols, p.Cells)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("game created", "rows", p.Rows, "cols", p.Cols, "delay", p.Delay)
	return &Game{
		delay:    p.Delay,
		m:        m,
		queue:    core.NewPipeQueue(o.queueSize, o.gen, p.Pipes...),
		history:  core.NewCellStack(),
		timer:    core.NewFlowTimer(p.Delay, o.cadence, o.interval),
		logger:   o.logger,
		distance: -1,
	}, nil
}

// Map returns the map. Callers must not mutate it.
func (g *Game) Map() *core.Map { return g.m }

// Queue returns the upcoming pipe shapes, next first.
func (g *Game) Queue() []core.Shape { return g.queue.Shapes() }

// Delay returns the ticks before water starts flowing.
func (g *Game) Delay() int { return g.delay }

// Steps returns the number of placements, skips and undos made.
func (g *Game) Steps() int { return g.steps }

// Undos returns the number of successful undos.
func (g *Game) Undos() int { return g.history.UndoCount() }

// Ticks returns the number of ticks processed.
func (g *Game) Ticks() int { return g.ticks }

// Distance returns the flow distance applied to the map, negative before the
// water starts.
func (g *Game) Distance() int { return g.distance }

// Status returns the current outcome.
func (g *Game) Status() Status { return g.status }

// Properties returns the pre-flow form of the current map.
func (g *Game) Properties() core.Properties {
	p := g.m.Properties(g.delay)
	p.Pipes = g.queue.Shapes()
	return p
}

// PlacePipe puts the next pipe of the queue at (row, col).
func (g *Game) PlacePipe(row, col int) bool {
	if g.status != StatusPlaying {
		return false
	}
	c := core.C(row, col)
	p := g.queue.Peek()
	if !g.m.TryPlacePipe(c, p) {
		return false
	}
	g.queue.Consume()
	g.history.Push(core.Placement{Coord: c, Pipe: p})
	g.steps++
	g.logger.Debug("pipe placed", "at", c, "shape", p.Shape())
	return true
}

// SkipPipe discards the next pipe of the queue.
func (g *Game) SkipPipe() {
	if g.status != StatusPlaying {
		return
	}
	p := g.queue.Consume()
	g.steps++
	g.logger.Debug("pipe skipped", "shape", p.Shape())
}

// UndoStep takes back the latest placement. A placement already reached by
// water stays, and the call reports false.
func (g *Game) UndoStep() bool {
	if g.status != StatusPlaying {
		return false
	}
	last, ok := g.history.Pop()
	if !ok {
		return false
	}
	if last.Pipe.Filled() {
		g.history.Push(last)
		return false
	}

	g.queue.Undo(last.Pipe)
	g.m.Undo(last.Coord)
	g.history.RecordUndo()
	g.steps++
	g.logger.Debug("placement undone", "at", last.Coord)
	return true
}

// RotateSource turns the source clockwise, skipping directions that face a
// wall. It fails once water has started.
func (g *Game) RotateSource() bool {
	if g.status != StatusPlaying {
		return false
	}
	if err := g.m.RotateSource(); err != nil {
		g.logger.Debug("source rotation refused", "error", err)
		return false
	}
	return true
}

// UpdateState applies the timer's current flow distance to the map.
func (g *Game) UpdateState() {
	g.updateTo(g.timer.Distance())
}

func (g *Game) updateTo(distance int) {
	if distance < 0 {
		return
	}
	if !g.m.Started() {
		g.m.FillBeginTile()
	}
	g.m.FillTiles(distance)
	g.distance = max(g.distance, distance)
}

// HasWon reports whether water reached the sink.
func (g *Game) HasWon() bool {
	return g.m.CheckPath()
}

// HasLost reports whether the water spilled before reaching the sink.
func (g *Game) HasLost() bool {
	if g.distance <= 0 {
		return false
	}
	return g.m.HasLost()
}

// FillAllPipes fills every pipe connected to the source.
func (g *Game) FillAllPipes() {
	g.m.FillAll()
}

// RegisterTickCallback adds fn to the functions run on every tick.
func (g *Game) RegisterTickCallback(fn func(core.TickEvent)) {
	g.tickCallbacks = append(g.tickCallbacks, fn)
}

// RegisterFlowCallback adds fn to the functions run on every flow step.
func (g *Game) RegisterFlowCallback(fn func(core.FlowEvent)) {
	g.flowCallbacks = append(g.flowCallbacks, fn)
}

// StartCountdown starts the flow timer.
func (g *Game) StartCountdown() {
	g.timer.Start()
}

// StopCountdown stops the flow timer. No event read afterwards is Current.
func (g *Game) StopCountdown() {
	g.timer.Stop()
}

// Events returns the timer event channel.
func (g *Game) Events() <-chan core.Event {
	return g.timer.Events()
}

// Current reports whether ev comes from the running timer.
func (g *Game) Current(ev core.Event) bool {
	return g.timer.Current(ev)
}

// Dispatch applies a timer event and returns the resulting status.
// Events after the game ended are ignored.
func (g *Game) Dispatch(ev core.Event) Status {
	if g.status != StatusPlaying {
		return g.status
	}

	switch e := ev.(type) {
	case core.TickEvent:
		g.ticks = max(g.ticks, e.Tick)
		for _, fn := range g.tickCallbacks {
			fn(e)
		}
		if g.HasWon() {
			g.finish(StatusWon)
		}
	case core.FlowEvent:
		g.updateTo(e.Distance)
		for _, fn := range g.flowCallbacks {
			fn(e)
		}
		switch {
		case g.HasWon():
			g.finish(StatusWon)
		case g.HasLost():
			g.finish(StatusLost)
		}
	}
	return g.status
}

func (g *Game) finish(s Status) {
	g.status = s
	g.timer.Stop()
	if s == StatusWon {
		g.FillAllPipes()
	}
	g.logger.Info("game over", "status", s, "steps", g.steps, "undos", g.Undos(), "ticks", g.ticks)
}

// Run starts the timer and applies commands and timer events in arrival
// order until the game is won, lost, or ctx is done. A closed cmds channel
// leaves the game running on timer events alone.
func (g *Game) Run(ctx context.Context, cmds <-chan Command) (Status, error) {
	if g.status != StatusPlaying {
		return g.status, ErrGameOver
	}
	if g.timer.State() != core.TimerRunning {
		g.timer.Start()
	}
	defer g.timer.Stop()

	for g.status == StatusPlaying {
		select {
		case <-ctx.Done():
			return g.status, ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}
			g.Apply(cmd)
		case ev := <-g.timer.Events():
			if g.timer.Current(ev) {
				g.Dispatch(ev)
			}
		}
	}
	return g.status, nil
}

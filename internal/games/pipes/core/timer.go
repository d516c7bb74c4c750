package core

import (
	"sync"
	"time"
)

// Timer defaults.
const (
	DefaultFlowDelay    = 10
	DefaultFlowCadence  = 5
	DefaultTickInterval = time.Second
)

const eventBuffer = 16

// TimerState is the run state of a FlowTimer.
type TimerState uint8

const (
	TimerStopped TimerState = iota
	TimerRunning
)

func (s TimerState) String() string {
	if s == TimerRunning {
		return "Running"
	}
	return "Stopped"
}

// FlowTimer counts ticks and decides when the water moves. A flow event is
// emitted on every tick where ticks >= delay and ticks % cadence == 0.
//
// Events are delivered on Events(). After Stop returns the producing goroutine
// has exited and no event already buffered is Current any more.
type FlowTimer struct {
	delay    int
	cadence  int
	interval time.Duration

	mu       sync.Mutex
	state    TimerState
	ticks    int
	distance int
	run      uint64
	quit     chan struct{}
	wg       sync.WaitGroup

	events chan Event
}

// NewFlowTimer creates a stopped timer. Non-positive arguments fall back to
// the defaults.
func NewFlowTimer(delay, cadence int, interval time.Duration) *FlowTimer {
	if delay < 1 {
		delay = DefaultFlowDelay
	}
	if cadence < 1 {
		cadence = DefaultFlowCadence
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &FlowTimer{
		delay:    delay,
		cadence:  cadence,
		interval: interval,
		distance: -1,
		events:   make(chan Event, eventBuffer),
	}
}

// Events returns the channel the timer emits on.
func (t *FlowTimer) Events() <-chan Event {
	return t.events
}

// Delay returns the number of ticks before water can flow.
func (t *FlowTimer) Delay() int { return t.delay }

// Cadence returns the number of ticks between flow events.
func (t *FlowTimer) Cadence() int { return t.cadence }

// Start begins ticking. Starting a running timer is a programming error and panics.
func (t *FlowTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == TimerRunning {
		panic("core: flow timer already running")
	}
	t.state = TimerRunning
	t.quit = make(chan struct{})
	t.wg.Add(1)
	go t.loop(t.run, t.quit)
}

// Stop halts the timer and waits for the producer to exit. Stopping a
// stopped timer does nothing.
func (t *FlowTimer) Stop() {
	t.mu.Lock()
	if t.state == TimerStopped {
		t.mu.Unlock()
		return
	}
	t.state = TimerStopped
	t.run++
	close(t.quit)
	t.mu.Unlock()

	t.wg.Wait()
}

// State returns whether the timer is running.
func (t *FlowTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Ticks returns the number of ticks elapsed.
func (t *FlowTimer) Ticks() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// Distance returns the number of flow events so far minus one: negative
// before the first flow, 0 on it, positive afterwards.
func (t *FlowTimer) Distance() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.distance
}

// Current reports whether ev belongs to the running session of the timer.
func (t *FlowTimer) Current(ev Event) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == TimerRunning && ev.epoch() == t.run
}

func (t *FlowTimer) loop(run uint64, quit <-chan struct{}) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			for _, ev := range t.advance(run) {
				select {
				case t.events <- ev:
				case <-quit:
					return
				}
			}
		}
	}
}

// advance counts one tick for run and returns the events it produces.
func (t *FlowTimer) advance(run uint64) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerRunning || t.run != run {
		return nil
	}
	t.ticks++
	events := []Event{TickEvent{Tick: t.ticks, run: run}}
	if t.ticks >= t.delay && t.ticks%t.cadence == 0 {
		t.distance++
		events = append(events, FlowEvent{Tick: t.ticks, Distance: t.distance, run: run})
	}
	return events
}

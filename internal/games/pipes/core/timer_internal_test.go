package core

import (
	"testing"
	"time"
)

func TestFlowTimerAdvance(t *testing.T) {
	timer := NewFlowTimer(10, 5, time.Hour)
	timer.state = TimerRunning

	var flowsAt []int
	for i := 0; i < 25; i++ {
		for _, ev := range timer.advance(timer.run) {
			if f, ok := ev.(FlowEvent); ok {
				flowsAt = append(flowsAt, f.Tick)
				if f.Distance != len(flowsAt)-1 {
					t.Errorf("flow at tick %d has distance %d", f.Tick, f.Distance)
				}
			}
		}
	}

	want := []int{10, 15, 20, 25}
	if len(flowsAt) != len(want) {
		t.Fatalf("flows at %v, want %v", flowsAt, want)
	}
	for i := range want {
		if flowsAt[i] != want[i] {
			t.Errorf("flow %d at tick %d, want %d", i, flowsAt[i], want[i])
		}
	}
	if timer.Ticks() != 25 || timer.Distance() != 3 {
		t.Errorf("Ticks() = %d, Distance() = %d", timer.Ticks(), timer.Distance())
	}
}

func TestFlowTimerStaleRun(t *testing.T) {
	timer := NewFlowTimer(1, 1, time.Hour)
	timer.state = TimerRunning

	evs := timer.advance(timer.run)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want tick and flow", len(evs))
	}
	if !timer.Current(evs[0]) {
		t.Error("event of the running session is not current")
	}

	timer.state = TimerStopped
	timer.run++
	if timer.Current(evs[1]) {
		t.Error("event from a stopped session is still current")
	}
	if got := timer.advance(timer.run - 1); got != nil {
		t.Errorf("stale run produced %v", got)
	}
}

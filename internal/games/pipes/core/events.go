package core

// Event is emitted by a FlowTimer. The variants are TickEvent and FlowEvent.
type Event interface {
	epoch() uint64
}

// TickEvent is sent once per tick.
type TickEvent struct {
	Tick int // ticks elapsed, starting at 1
	run  uint64
}

// FlowEvent is sent on ticks where the water advances.
type FlowEvent struct {
	Tick     int
	Distance int // 0 on the first flow event
	run      uint64
}

func (e TickEvent) epoch() uint64 { return e.run }
func (e FlowEvent) epoch() uint64 { return e.run }

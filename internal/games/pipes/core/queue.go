package core

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/list"
	"github.com/zyedidia/generic/stack"
)

// DefaultQueueSize is the number of upcoming pipes shown to the player.
const DefaultQueueSize = 5

// Generator produces the shapes that replenish the pipe queue.
type Generator interface {
	Next() Shape
}

// RandomGenerator draws shapes uniformly from a seeded PCG source.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRand creates a deterministic random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewRandomGenerator creates a generator that yields the same shapes for the same seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: NewRand(seed)}
}

// Next returns a random shape.
func (g *RandomGenerator) Next() Shape {
	return Shapes[g.rng.IntN(len(Shapes))]
}

// CycleGenerator repeats a fixed list of shapes.
type CycleGenerator struct {
	shapes []Shape
	next   int
}

// NewCycleGenerator creates a generator cycling through shapes.
// It panics if shapes is empty.
func NewCycleGenerator(shapes ...Shape) *CycleGenerator {
	if len(shapes) == 0 {
		panic("core: cycle generator needs at least one shape")
	}
	return &CycleGenerator{shapes: shapes}
}

// Next returns the next shape in the cycle.
func (g *CycleGenerator) Next() Shape {
	s := g.shapes[g.next]
	g.next = (g.next + 1) % len(g.shapes)
	return s
}

// PipeQueue holds the fixed number of pipes the player must place in order.
// Pipes taken back by Undo are kept aside and handed out again before the
// generator is asked for new ones, so place then undo restores the queue exactly.
type PipeQueue struct {
	pipes   *list.List[*Pipe]
	size    int
	gen     Generator
	pending *stack.Stack[*Pipe]
}

// NewPipeQueue creates a queue of size pipes. The queue starts with the
// initial shapes in order; any beyond size come next, then the generator.
// A size below 1 means DefaultQueueSize.
func NewPipeQueue(size int, gen Generator, initial ...Shape) *PipeQueue {
	if size < 1 {
		size = DefaultQueueSize
	}
	q := &PipeQueue{
		pipes:   list.New[*Pipe](),
		size:    size,
		gen:     gen,
		pending: stack.New[*Pipe](),
	}
	for i := len(initial) - 1; i >= size; i-- {
		q.pending.Push(NewPipe(initial[i]))
	}
	for i := 0; i < size; i++ {
		if i < len(initial) {
			q.pipes.PushBack(NewPipe(initial[i]))
		} else {
			q.pipes.PushBack(q.produce())
		}
	}
	return q
}

func (q *PipeQueue) produce() *Pipe {
	if q.pending.Size() > 0 {
		return q.pending.Pop()
	}
	return NewPipe(q.gen.Next())
}

// Peek returns the next pipe without removing it.
func (q *PipeQueue) Peek() *Pipe {
	return q.pipes.Front.Value
}

// Consume removes and returns the head pipe and refills the tail.
func (q *PipeQueue) Consume() *Pipe {
	head := q.pipes.Front
	q.pipes.Remove(head)
	q.pipes.PushBack(q.produce())
	return head.Value
}

// Undo puts p back at the head, reversing the most recent Consume.
func (q *PipeQueue) Undo(p *Pipe) {
	if p == nil {
		return
	}
	q.pipes.PushFront(p)
	tail := q.pipes.Back
	q.pipes.Remove(tail)
	q.pending.Push(tail.Value)
}

// Len returns the number of queued pipes.
func (q *PipeQueue) Len() int {
	return q.size
}

// Shapes returns the queued shapes from head to tail.
func (q *PipeQueue) Shapes() []Shape {
	out := make([]Shape, 0, q.size)
	for node := q.pipes.Front; node != nil; node = node.Next {
		out = append(out, node.Value.shape)
	}
	return out
}

package core

import "github.com/zyedidia/generic/stack"

// Placement records one pipe placed on the map.
type Placement struct {
	Coord Coordinate
	Pipe  *Pipe
}

// CellStack is the undo history of placements, most recent on top.
type CellStack struct {
	history *stack.Stack[Placement]
	undos   int
}

// NewCellStack creates an empty history.
func NewCellStack() *CellStack {
	return &CellStack{history: stack.New[Placement]()}
}

// Push records a successful placement.
func (s *CellStack) Push(p Placement) {
	s.history.Push(p)
}

// Pop removes and returns the most recent placement.
// ok is false when the history is empty.
func (s *CellStack) Pop() (p Placement, ok bool) {
	if s.history.Size() == 0 {
		return Placement{}, false
	}
	return s.history.Pop(), true
}

// Len returns the number of recorded placements.
func (s *CellStack) Len() int {
	return s.history.Size()
}

// RecordUndo counts one successful undo.
func (s *CellStack) RecordUndo() {
	s.undos++
}

// UndoCount returns the number of successful undos.
func (s *CellStack) UndoCount() int {
	return s.undos
}

package core

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Map is the grid of cells plus the state of the water flowing through it.
// Cells are stored row-major in a flat slice indexed by row*cols+col.
// Map is not safe for concurrent use.
type Map struct {
	rows  int
	cols  int
	cells []Cell

	source Coordinate
	sink   Coordinate

	started  bool
	applied  int                     // flow distance already propagated
	frontier mapset.Set[Coordinate] // tiles filled by the latest step
}

// NewMap validates cells and builds a map from unfilled copies of them.
// The caller keeps ownership of cells; nothing is partially applied on error.
func NewMap(rows, cols int, cells []Cell) (*Map, error) {
	if err := ValidateCells(rows, cols, cells); err != nil {
		return nil, err
	}

	m := &Map{
		rows:     rows,
		cols:     cols,
		cells:    make([]Cell, len(cells)),
		frontier: mapset.New[Coordinate](),
	}
	for i, c := range cells {
		m.cells[i] = CloneCell(c)
		if t, ok := m.cells[i].(*TerminationCell); ok {
			if t.kind == KindSource {
				m.source = t.coord
			} else {
				m.sink = t.coord
			}
		}
	}
	return m, nil
}

// Rows returns the number of rows, border included.
func (m *Map) Rows() int { return m.rows }

// Cols returns the number of columns, border included.
func (m *Map) Cols() int { return m.cols }

// InBounds reports whether c lies on the map.
func (m *Map) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

func (m *Map) index(c Coordinate) int {
	return c.Row*m.cols + c.Col
}

// At returns the cell at c, or nil when out of bounds.
func (m *Map) At(c Coordinate) Cell {
	if !m.InBounds(c) {
		return nil
	}
	return m.cells[m.index(c)]
}

// Source returns the source cell.
func (m *Map) Source() *TerminationCell {
	return m.cells[m.index(m.source)].(*TerminationCell)
}

// Sink returns the sink cell.
func (m *Map) Sink() *TerminationCell {
	return m.cells[m.index(m.sink)].(*TerminationCell)
}

// Started reports whether the source has been filled.
func (m *Map) Started() bool { return m.started }

// TryPlacePipe installs p at c. It fails without side effects when c is out
// of bounds, not a fillable cell, or already holds a pipe.
func (m *Map) TryPlacePipe(c Coordinate, p *Pipe) bool {
	if p == nil {
		return false
	}
	cell, ok := m.At(c).(*FillableCell)
	if !ok || cell.pipe != nil {
		return false
	}
	cell.pipe = p
	return true
}

// Undo removes the pipe at c if it has not been reached by water.
// It returns whether a pipe was removed.
func (m *Map) Undo(c Coordinate) bool {
	cell, ok := m.At(c).(*FillableCell)
	if !ok || cell.pipe == nil || cell.pipe.filled {
		return false
	}
	cell.pipe = nil
	return true
}

// RotateSource turns the source clockwise to the next direction that does not
// face a wall. Only the source tile is replaced.
func (m *Map) RotateSource() error {
	if m.started {
		return ErrFlowStarted
	}
	src := m.Source()
	for next := src.rotated(); next.pointingTo != src.pointingTo; next = next.rotated() {
		cell := m.At(m.source.Step(next.pointingTo))
		if _, wall := cell.(*Wall); cell != nil && !wall {
			m.cells[m.index(m.source)] = next
			return nil
		}
	}
	return ErrSourceBlocked
}

// FilledCoords returns every filled tile in row-major order.
func (m *Map) FilledCoords() []Coordinate {
	var out []Coordinate
	for _, cell := range m.cells {
		if cellFilled(cell) {
			out = append(out, cell.Coord())
		}
	}
	return out
}

// String renders the map with display glyphs, one line per row.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.cols + 1) * m.rows * 3)
	for r := range m.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range m.cols {
			sb.WriteRune(m.cells[r*m.cols+c].Rune())
		}
	}
	return sb.String()
}

// Properties returns the pre-flow form of the map with the given delay.
func (m *Map) Properties(delay int) Properties {
	cells := make([]Cell, len(m.cells))
	for i, c := range m.cells {
		cells[i] = CloneCell(c)
	}
	return Properties{Rows: m.rows, Cols: m.cols, Delay: delay, Cells: cells}
}

func cellFilled(c Cell) bool {
	switch v := c.(type) {
	case *FillableCell:
		return v.pipe != nil && v.pipe.filled
	case *TerminationCell:
		return v.filled
	}
	return false
}

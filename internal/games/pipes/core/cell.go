package core

// Cell is a single tile of the map. The set of variants is closed:
// *Wall, *FillableCell and *TerminationCell.
type Cell interface {
	// Coord returns the position of the cell.
	Coord() Coordinate
	// Rune returns the display glyph, reflecting fill state.
	Rune() rune
	// SerializedRune returns the glyph written to map files.
	SerializedRune() rune

	isCell()
}

// Wall is a non-traversable tile.
type Wall struct {
	coord Coordinate
}

// NewWall creates a wall at c.
func NewWall(c Coordinate) *Wall {
	return &Wall{coord: c}
}

func (w *Wall) Coord() Coordinate    { return w.coord }
func (w *Wall) Rune() rune           { return 'W' }
func (w *Wall) SerializedRune() rune { return 'W' }
func (*Wall) isCell()                {}

// FillableCell is a tile that can hold one pipe.
type FillableCell struct {
	coord Coordinate
	pipe  *Pipe
}

// NewFillableCell creates an empty fillable cell at c.
func NewFillableCell(c Coordinate) *FillableCell {
	return &FillableCell{coord: c}
}

// NewFillableCellWithPipe creates a fillable cell already holding p.
func NewFillableCellWithPipe(c Coordinate, p *Pipe) *FillableCell {
	return &FillableCell{coord: c, pipe: p}
}

func (f *FillableCell) Coord() Coordinate { return f.coord }

// Pipe returns the placed pipe, or nil.
func (f *FillableCell) Pipe() *Pipe { return f.pipe }

func (f *FillableCell) Rune() rune {
	if f.pipe == nil {
		return '.'
	}
	return f.pipe.Rune()
}

func (f *FillableCell) SerializedRune() rune {
	if f.pipe == nil {
		return '.'
	}
	return f.pipe.shape.Rune()
}

func (*FillableCell) isCell() {}

// TerminationKind distinguishes the two termination tiles.
type TerminationKind uint8

const (
	KindSource TerminationKind = iota
	KindSink
)

func (k TerminationKind) String() string {
	if k == KindSink {
		return "Sink"
	}
	return "Source"
}

// TerminationCell is the Source or the Sink. A Source points where water
// leaves; a Sink points back into the map where water arrives from.
type TerminationCell struct {
	coord      Coordinate
	pointingTo Direction
	kind       TerminationKind
	filled     bool
}

// NewTerminationCell creates an unfilled termination cell.
func NewTerminationCell(c Coordinate, pointingTo Direction, kind TerminationKind) *TerminationCell {
	return &TerminationCell{coord: c, pointingTo: pointingTo, kind: kind}
}

func (t *TerminationCell) Coord() Coordinate { return t.coord }

// PointingTo returns the orientation of the cell.
func (t *TerminationCell) PointingTo() Direction { return t.pointingTo }

// Kind returns whether this is the Source or the Sink.
func (t *TerminationCell) Kind() TerminationKind { return t.kind }

// Filled reports whether water has reached the cell.
func (t *TerminationCell) Filled() bool { return t.filled }

func (t *TerminationCell) Rune() rune {
	if !t.filled {
		return t.SerializedRune()
	}
	switch t.pointingTo {
	case DirUp:
		return '↑'
	case DirRight:
		return '→'
	case DirDown:
		return '↓'
	default:
		return '←'
	}
}

func (t *TerminationCell) SerializedRune() rune {
	switch t.pointingTo {
	case DirUp:
		return '^'
	case DirRight:
		return '>'
	case DirDown:
		return 'v'
	default:
		return '<'
	}
}

func (*TerminationCell) isCell() {}

func (t *TerminationCell) fill() {
	t.filled = true
}

// rotated returns a copy of t pointing a quarter turn clockwise.
func (t *TerminationCell) rotated() *TerminationCell {
	cp := *t
	cp.pointingTo = t.pointingTo.RotateCW()
	return &cp
}

// terminationDirection maps a serialized termination glyph to its direction.
func terminationDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return DirUp, true
	case '>':
		return DirRight, true
	case 'v':
		return DirDown, true
	case '<':
		return DirLeft, true
	}
	return 0, false
}

// CellFromRune builds the cell described by a map-file glyph at c on a map of
// rows x cols tiles. A termination glyph on the border is the Sink, anywhere
// else the Source.
func CellFromRune(r rune, c Coordinate, rows, cols int) (Cell, error) {
	if r == 'W' {
		return NewWall(c), nil
	}
	if r == '.' {
		return NewFillableCell(c), nil
	}
	if s, ok := ParseShape(r); ok {
		return NewFillableCellWithPipe(c, NewPipe(s)), nil
	}
	if d, ok := terminationDirection(r); ok {
		kind := KindSource
		if onBorder(c, rows, cols) {
			kind = KindSink
		}
		return NewTerminationCell(c, d, kind), nil
	}
	return nil, MapError{
		Code:    CodeUnknownGlyph,
		Message: "unknown tile " + string(r) + " at " + c.String(),
	}
}

// CloneCell returns an unfilled copy of c that shares no pipe with it.
func CloneCell(c Cell) Cell {
	switch v := c.(type) {
	case *Wall:
		return NewWall(v.coord)
	case *FillableCell:
		if v.pipe == nil {
			return NewFillableCell(v.coord)
		}
		return NewFillableCellWithPipe(v.coord, NewPipe(v.pipe.shape))
	case *TerminationCell:
		return NewTerminationCell(v.coord, v.pointingTo, v.kind)
	}
	return nil
}

func onBorder(c Coordinate, rows, cols int) bool {
	return c.Row == 0 || c.Row == rows-1 || c.Col == 0 || c.Col == cols-1
}

func onCorner(c Coordinate, rows, cols int) bool {
	return (c.Row == 0 || c.Row == rows-1) && (c.Col == 0 || c.Col == cols-1)
}

// inwardDirection returns the direction from a border tile into the map.
func inwardDirection(c Coordinate, rows, cols int) Direction {
	switch {
	case c.Col == cols-1:
		return DirLeft
	case c.Row == 0:
		return DirDown
	case c.Col == 0:
		return DirRight
	default:
		return DirUp
	}
}

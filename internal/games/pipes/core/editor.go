package core

// TileKind selects what Editor.SetTile places.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileCell
	TileTermination
)

func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "Wall"
	case TileCell:
		return "Cell"
	case TileTermination:
		return "Termination"
	default:
		return "Unknown"
	}
}

// Editor builds maps tile by tile. It keeps at most one source and one sink:
// placing a new one replaces the previous.
type Editor struct {
	rows  int
	cols  int
	delay int
	cells []Cell
	pipes []Shape

	source *Coordinate
	sink   *Coordinate
}

// NewEditor creates a rows x cols map surrounded by walls with an empty interior.
func NewEditor(rows, cols, delay int) *Editor {
	e := &Editor{rows: max(rows, 0), cols: max(cols, 0), delay: delay}
	e.cells = make([]Cell, e.rows*e.cols)
	for r := range e.rows {
		for c := range e.cols {
			coord := C(r, c)
			if onBorder(coord, e.rows, e.cols) {
				e.cells[r*e.cols+c] = NewWall(coord)
			} else {
				e.cells[r*e.cols+c] = NewFillableCell(coord)
			}
		}
	}
	return e
}

// EditorFromProperties opens existing map properties for editing.
func EditorFromProperties(p Properties) *Editor {
	e := &Editor{rows: p.Rows, cols: p.Cols, delay: p.Delay, cells: make([]Cell, len(p.Cells))}
	e.pipes = append([]Shape(nil), p.Pipes...)
	for i, cell := range p.Cells {
		e.cells[i] = CloneCell(cell)
		if t, ok := e.cells[i].(*TerminationCell); ok {
			coord := t.coord
			if t.kind == KindSource {
				e.source = &coord
			} else {
				e.sink = &coord
			}
		}
	}
	return e
}

// Rows returns the map height including the border.
func (e *Editor) Rows() int { return e.rows }

// Cols returns the map width including the border.
func (e *Editor) Cols() int { return e.cols }

// Delay returns the flow delay of the map.
func (e *Editor) Delay() int { return e.delay }

func (e *Editor) inBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < e.rows && c.Col >= 0 && c.Col < e.cols
}

// At returns the cell at c, or nil when out of bounds.
func (e *Editor) At(c Coordinate) Cell {
	if !e.inBounds(c) {
		return nil
	}
	return e.cells[c.Row*e.cols+c.Col]
}

// SetDelay changes the flow delay.
func (e *Editor) SetDelay(delay int) {
	e.delay = delay
}

// SetTile places a tile of the given kind at c and reports whether anything
// changed. A termination on the border becomes the sink facing inwards, one
// inside becomes the source facing up. Corners cannot hold a termination.
func (e *Editor) SetTile(kind TileKind, c Coordinate) bool {
	if !e.inBounds(c) {
		return false
	}

	switch kind {
	case TileWall:
		e.forget(c)
		e.put(NewWall(c))
	case TileCell:
		e.forget(c)
		e.put(NewFillableCell(c))
	case TileTermination:
		if !onBorder(c, e.rows, e.cols) {
			if e.source != nil && *e.source != c {
				e.put(NewFillableCell(*e.source))
			}
			e.forget(c)
			e.put(NewTerminationCell(c, DirUp, KindSource))
			e.source = &c
			return true
		}
		if onCorner(c, e.rows, e.cols) {
			return false
		}
		if e.sink != nil && *e.sink != c {
			e.put(NewWall(*e.sink))
		}
		e.forget(c)
		e.put(NewTerminationCell(c, inwardDirection(c, e.rows, e.cols), KindSink))
		e.sink = &c
	default:
		return false
	}
	return true
}

// ToggleSourceRotation turns the source a quarter clockwise.
// It reports false when there is no source.
func (e *Editor) ToggleSourceRotation() bool {
	if e.source == nil {
		return false
	}
	src := e.At(*e.source).(*TerminationCell)
	e.put(src.rotated())
	return true
}

// Properties returns a snapshot of the map being edited.
func (e *Editor) Properties() Properties {
	cells := make([]Cell, len(e.cells))
	for i, c := range e.cells {
		cells[i] = CloneCell(c)
	}
	pipes := append([]Shape(nil), e.pipes...)
	return Properties{Rows: e.rows, Cols: e.cols, Delay: e.delay, Cells: cells, Pipes: pipes}
}

// Validate reports the first problem that would stop the map from loading.
func (e *Editor) Validate() error {
	return e.Properties().Validate()
}

func (e *Editor) put(c Cell) {
	e.cells[c.Coord().Row*e.cols+c.Coord().Col] = c
}

// forget clears the source or sink reference held for c.
func (e *Editor) forget(c Coordinate) {
	if e.source != nil && *e.source == c {
		e.source = nil
	}
	if e.sink != nil && *e.sink == c {
		e.sink = nil
	}
}

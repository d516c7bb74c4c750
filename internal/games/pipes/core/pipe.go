package core

// Shape is the form of a pipe segment.
// Corner shapes are named after the two sides they open to.
type Shape uint8

const (
	ShapeHorizontal Shape = iota
	ShapeVertical
	ShapeTopLeft
	ShapeTopRight
	ShapeBottomLeft
	ShapeBottomRight
	ShapeCross
)

// Shapes lists every pipe shape.
var Shapes = [...]Shape{
	ShapeHorizontal,
	ShapeVertical,
	ShapeTopLeft,
	ShapeTopRight,
	ShapeBottomLeft,
	ShapeBottomRight,
	ShapeCross,
}

type shapeInfo struct {
	name     string
	empty    rune
	filled   rune
	openings [4]bool // indexed by Direction
}

var shapeTable = [...]shapeInfo{
	ShapeHorizontal:  {"Horizontal", '═', '━', [4]bool{DirLeft: true, DirRight: true}},
	ShapeVertical:    {"Vertical", '║', '┃', [4]bool{DirUp: true, DirDown: true}},
	ShapeTopLeft:     {"TopLeft", '╝', '┛', [4]bool{DirUp: true, DirLeft: true}},
	ShapeTopRight:    {"TopRight", '╚', '┗', [4]bool{DirUp: true, DirRight: true}},
	ShapeBottomLeft:  {"BottomLeft", '╗', '┓', [4]bool{DirDown: true, DirLeft: true}},
	ShapeBottomRight: {"BottomRight", '╔', '┏', [4]bool{DirDown: true, DirRight: true}},
	ShapeCross:       {"Cross", '╬', '╋', [4]bool{true, true, true, true}},
}

func (s Shape) valid() bool {
	return int(s) < len(shapeTable)
}

// String returns the shape name.
func (s Shape) String() string {
	if !s.valid() {
		return "Unknown"
	}
	return shapeTable[s].name
}

// Rune returns the glyph of an unfilled pipe of this shape.
// This is also the glyph used in map files.
func (s Shape) Rune() rune {
	if !s.valid() {
		return '?'
	}
	return shapeTable[s].empty
}

// FilledRune returns the glyph of a filled pipe of this shape.
func (s Shape) FilledRune() rune {
	if !s.valid() {
		return '?'
	}
	return shapeTable[s].filled
}

// HasOpening reports whether water can pass through the side facing d.
func (s Shape) HasOpening(d Direction) bool {
	if !s.valid() || int(d) >= len(shapeTable[s].openings) {
		return false
	}
	return shapeTable[s].openings[d]
}

// Openings returns the open sides in clockwise order.
func (s Shape) Openings() []Direction {
	var out []Direction
	for _, d := range Directions {
		if s.HasOpening(d) {
			out = append(out, d)
		}
	}
	return out
}

// ParseShape returns the shape drawn by r (unfilled glyph set only).
func ParseShape(r rune) (Shape, bool) {
	for _, s := range Shapes {
		if shapeTable[s].empty == r {
			return s, true
		}
	}
	return 0, false
}

// Pipe is a single pipe segment. A pipe is owned by at most one holder at a
// time: the queue before placement, the cell after.
type Pipe struct {
	shape  Shape
	filled bool
}

// NewPipe creates an unfilled pipe of the given shape.
func NewPipe(s Shape) *Pipe {
	return &Pipe{shape: s}
}

// Shape returns the pipe shape.
func (p *Pipe) Shape() Shape {
	return p.shape
}

// Filled reports whether water has reached this pipe.
func (p *Pipe) Filled() bool {
	return p.filled
}

// HasOpening reports whether the pipe is open on side d.
func (p *Pipe) HasOpening(d Direction) bool {
	return p.shape.HasOpening(d)
}

// Rune returns the display glyph for the pipe.
func (p *Pipe) Rune() rune {
	if p.filled {
		return p.shape.FilledRune()
	}
	return p.shape.Rune()
}

func (p *Pipe) fill() {
	p.filled = true
}

package core

import (
	"errors"
	"fmt"
)

// MapError describes why a map is unusable.
type MapError struct {
	Code    string
	Message string
}

func (e MapError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Map error codes.
const (
	CodeBadDims         = "BAD_DIMS"
	CodeBadDelay        = "BAD_DELAY"
	CodeBadHeader       = "BAD_HEADER"
	CodeNotRectangular  = "NOT_RECTANGULAR"
	CodeUnknownGlyph    = "UNKNOWN_GLYPH"
	CodeMissingSource   = "MISSING_SOURCE"
	CodeMissingSink     = "MISSING_SINK"
	CodeMultipleSources = "MULTIPLE_SOURCES"
	CodeMultipleSinks   = "MULTIPLE_SINKS"
	CodeBadBorder       = "BAD_BORDER"
	CodeSinkNotInward   = "SINK_NOT_INWARD"
	CodeSourceToWall    = "SOURCE_TO_WALL"
	CodeSinkToWall      = "SINK_TO_WALL"
)

// ErrFlowStarted is returned when an action is only allowed before water flows.
var ErrFlowStarted = errors.New("core: flow already started")

// ErrSourceBlocked is returned when every other source direction faces a wall.
var ErrSourceBlocked = errors.New("core: source has no other open direction")

// MinSize is the smallest accepted map dimension, border included.
const MinSize = 2

// Properties is the editable, pre-flow description of a map.
type Properties struct {
	Rows  int
	Cols  int
	Delay int
	// Cells is row-major with Rows*Cols entries.
	Cells []Cell
	// Pipes optionally seeds the head of the pipe queue.
	Pipes []Shape
}

// At returns the cell at (row, col), or nil when out of range.
func (p Properties) At(row, col int) Cell {
	if row < 0 || row >= p.Rows || col < 0 || col >= p.Cols {
		return nil
	}
	i := row*p.Cols + col
	if i >= len(p.Cells) {
		return nil
	}
	return p.Cells[i]
}

// Validate checks the grid and the flow delay.
func (p Properties) Validate() error {
	if err := ValidateCells(p.Rows, p.Cols, p.Cells); err != nil {
		return err
	}
	if p.Delay < 1 {
		return MapError{Code: CodeBadDelay, Message: "Delay must be a positive value!"}
	}
	return nil
}

// ValidateCells checks that cells form a playable rows x cols grid:
// one Source inside the border, one inward-facing Sink on a non-corner border
// tile, only walls elsewhere on the border, and neither termination facing a wall.
func ValidateCells(rows, cols int, cells []Cell) error {
	if rows < MinSize || cols < MinSize {
		return MapError{Code: CodeBadDims, Message: "Map size must be at least 2x2!"}
	}
	if len(cells) != rows*cols {
		return MapError{
			Code:    CodeNotRectangular,
			Message: fmt.Sprintf("expected %d cells for %dx%d, got %d", rows*cols, rows, cols, len(cells)),
		}
	}

	var source, sink *TerminationCell
	for i, cell := range cells {
		want := C(i/cols, i%cols)
		if cell == nil || cell.Coord() != want {
			return MapError{Code: CodeNotRectangular, Message: fmt.Sprintf("cell missing or misplaced at %s", want)}
		}

		border := onBorder(want, rows, cols)
		switch c := cell.(type) {
		case *Wall:
		case *FillableCell:
			if border {
				return MapError{Code: CodeBadBorder, Message: fmt.Sprintf("fillable cell on the border at %s", want)}
			}
		case *TerminationCell:
			if c.kind == KindSource {
				if border {
					return MapError{Code: CodeBadBorder, Message: fmt.Sprintf("source on the border at %s", want)}
				}
				if source != nil {
					return MapError{Code: CodeMultipleSources, Message: fmt.Sprintf("second source at %s", want)}
				}
				source = c
				continue
			}
			if !border || onCorner(want, rows, cols) {
				return MapError{Code: CodeBadBorder, Message: fmt.Sprintf("sink must be on a non-corner border tile, found at %s", want)}
			}
			if c.pointingTo != inwardDirection(want, rows, cols) {
				return MapError{Code: CodeSinkNotInward, Message: fmt.Sprintf("sink at %s must point into the map", want)}
			}
			if sink != nil {
				return MapError{Code: CodeMultipleSinks, Message: fmt.Sprintf("second sink at %s", want)}
			}
			sink = c
		}
	}

	if source == nil {
		return MapError{Code: CodeMissingSource, Message: "Source tile is missing!"}
	}
	if sink == nil {
		return MapError{Code: CodeMissingSink, Message: "Sink tile is missing!"}
	}

	at := func(c Coordinate) Cell { return cells[c.Row*cols+c.Col] }
	if _, ok := at(sink.coord.Step(sink.pointingTo)).(*Wall); ok {
		return MapError{Code: CodeSinkToWall, Message: "Sink tile is blocked by a wall!"}
	}
	if _, ok := at(source.coord.Step(source.pointingTo)).(*Wall); ok {
		return MapError{Code: CodeSourceToWall, Message: "Source tile is blocked by a wall!"}
	}
	return nil
}

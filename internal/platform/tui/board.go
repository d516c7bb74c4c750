package tui

import (
	"github.com/vovakirdan/tui-pipes/internal/core"
	engine "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// tileWidth is the number of screen columns per map tile: the glyph and a
// joint towards the right neighbour.
const tileWidth = 2

// grid is what the board drawing needs from a map or an editor.
type grid interface {
	Rows() int
	Cols() int
	At(c engine.Coordinate) engine.Cell
}

// boardSize returns the screen size of a drawn grid.
func boardSize(g grid) (w, h int) {
	return g.Cols() * tileWidth, g.Rows()
}

// drawBoard draws g with its top left corner at (x, y). The tile under cursor
// is highlighted when showCursor is set.
func drawBoard(s *core.Screen, x, y int, g grid, cursor engine.Coordinate, showCursor bool) {
	for r := range g.Rows() {
		for c := range g.Cols() {
			coord := engine.C(r, c)
			cell := g.At(coord)
			glyph, color := tileGlyph(cell)
			if showCursor && coord == cursor {
				color = core.ColorCursor
			}
			sx := x + c*tileWidth
			s.SetCell(sx, y+r, glyph, color)
			if joint, jointColor, ok := tileJoint(cell); ok {
				s.SetCell(sx+1, y+r, joint, jointColor)
			}
		}
	}
}

// tileGlyph returns the glyph and color of a single tile.
func tileGlyph(cell engine.Cell) (rune, core.Color) {
	switch t := cell.(type) {
	case *engine.Wall:
		return '▓', core.ColorGray
	case *engine.FillableCell:
		p := t.Pipe()
		if p == nil {
			return '·', core.ColorGray
		}
		if p.Filled() {
			return p.Rune(), core.ColorBrightCyan
		}
		return p.Rune(), core.ColorWhite
	case *engine.TerminationCell:
		if t.Filled() {
			return t.Rune(), core.ColorCyan
		}
		if t.Kind() == engine.KindSource {
			return t.Rune(), core.ColorBrightGreen
		}
		return t.Rune(), core.ColorBrightYellow
	}
	return ' ', core.ColorDefault
}

// tileJoint returns the connector drawn right of a tile that opens to the right.
func tileJoint(cell engine.Cell) (rune, core.Color, bool) {
	switch t := cell.(type) {
	case *engine.FillableCell:
		p := t.Pipe()
		if p == nil || !p.HasOpening(engine.DirRight) {
			return 0, 0, false
		}
		if p.Filled() {
			return '━', core.ColorBrightCyan, true
		}
		return '═', core.ColorWhite, true
	case *engine.TerminationCell:
		if t.PointingTo() != engine.DirRight {
			return 0, 0, false
		}
		if t.Filled() {
			return '━', core.ColorCyan, true
		}
		return '═', core.ColorGray, true
	}
	return 0, 0, false
}

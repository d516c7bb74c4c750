package tui

import (
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/core"
	engine "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

func TestDrawBoard(t *testing.T) {
	ed := engine.NewEditor(4, 5, 3)
	ed.SetTile(engine.TileTermination, engine.C(1, 1))
	ed.SetTile(engine.TileTermination, engine.C(0, 2))

	w, h := boardSize(ed)
	if w != 10 || h != 4 {
		t.Fatalf("boardSize = %dx%d, want 10x4", w, h)
	}

	s := core.NewScreen(w, h)
	drawBoard(s, 0, 0, ed, engine.C(2, 3), true)

	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"wall", 0, 0, '▓', core.ColorGray},
		{"empty", 4, 1, '·', core.ColorGray},
		{"source", 2, 1, '^', core.ColorBrightGreen},
		{"sink", 4, 0, 'v', core.ColorBrightYellow},
		{"cursor", 6, 2, '·', core.ColorCursor},
		{"no joint", 3, 1, ' ', core.ColorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.GetCell(tt.x, tt.y)
			if got.Rune != tt.rune || got.Color != tt.color {
				t.Errorf("cell (%d,%d) = %q/%v, want %q/%v", tt.x, tt.y, got.Rune, got.Color, tt.rune, tt.color)
			}
		})
	}
}

func TestTileJoint(t *testing.T) {
	tests := []struct {
		name string
		cell engine.Cell
		want rune
		ok   bool
	}{
		{"horizontal", engine.NewFillableCellWithPipe(engine.C(1, 1), engine.NewPipe(engine.ShapeHorizontal)), '═', true},
		{"vertical", engine.NewFillableCellWithPipe(engine.C(1, 1), engine.NewPipe(engine.ShapeVertical)), 0, false},
		{"empty", engine.NewFillableCell(engine.C(1, 1)), 0, false},
		{"source right", engine.NewTerminationCell(engine.C(1, 1), engine.DirRight, engine.KindSource), '═', true},
		{"source up", engine.NewTerminationCell(engine.C(1, 1), engine.DirUp, engine.KindSource), 0, false},
		{"wall", engine.NewWall(engine.C(0, 0)), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := tileJoint(tt.cell)
			if got != tt.want || ok != tt.ok {
				t.Errorf("tileJoint() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

func TestDirectionRotateCW(t *testing.T) {
	tests := []struct {
		in   core.Direction
		want core.Direction
	}{
		{core.DirUp, core.DirRight},
		{core.DirRight, core.DirDown},
		{core.DirDown, core.DirLeft},
		{core.DirLeft, core.DirUp},
	}

	for _, tt := range tests {
		if got := tt.in.RotateCW(); got != tt.want {
			t.Errorf("%s.RotateCW() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDirectionFullTurn(t *testing.T) {
	for _, d := range core.Directions {
		got := d.RotateCW().RotateCW().RotateCW().RotateCW()
		if got != d {
			t.Errorf("four turns from %s ended at %s", d, got)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%s.Opposite().Opposite() != %s", d, d)
		}
		if d.RotateCW().RotateCW() != d.Opposite() {
			t.Errorf("half turn from %s is not its opposite", d)
		}
	}
}

func TestCoordinateStep(t *testing.T) {
	c := core.C(3, 3)
	tests := []struct {
		dir  core.Direction
		want core.Coordinate
	}{
		{core.DirUp, core.C(2, 3)},
		{core.DirRight, core.C(3, 4)},
		{core.DirDown, core.C(4, 3)},
		{core.DirLeft, core.C(3, 2)},
	}

	for _, tt := range tests {
		if got := c.Step(tt.dir); got != tt.want {
			t.Errorf("Step(%s) = %s, want %s", tt.dir, got, tt.want)
		}
	}
}

func TestShapeOpenings(t *testing.T) {
	tests := []struct {
		shape core.Shape
		glyph rune
		open  []core.Direction
	}{
		{core.ShapeHorizontal, '═', []core.Direction{core.DirRight, core.DirLeft}},
		{core.ShapeVertical, '║', []core.Direction{core.DirUp, core.DirDown}},
		{core.ShapeTopLeft, '╝', []core.Direction{core.DirUp, core.DirLeft}},
		{core.ShapeTopRight, '╚', []core.Direction{core.DirUp, core.DirRight}},
		{core.ShapeBottomLeft, '╗', []core.Direction{core.DirDown, core.DirLeft}},
		{core.ShapeBottomRight, '╔', []core.Direction{core.DirRight, core.DirDown}},
		{core.ShapeCross, '╬', []core.Direction{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			if tt.shape.Rune() != tt.glyph {
				t.Errorf("Rune() = %q, want %q", tt.shape.Rune(), tt.glyph)
			}
			parsed, ok := core.ParseShape(tt.glyph)
			if !ok || parsed != tt.shape {
				t.Errorf("ParseShape(%q) = %v, %v", tt.glyph, parsed, ok)
			}

			open := make(map[core.Direction]bool)
			for _, d := range tt.open {
				open[d] = true
			}
			for _, d := range core.Directions {
				if tt.shape.HasOpening(d) != open[d] {
					t.Errorf("HasOpening(%s) = %v, want %v", d, tt.shape.HasOpening(d), open[d])
				}
			}
		})
	}
}

func TestPipeRuneReflectsFill(t *testing.T) {
	p := core.NewPipe(core.ShapeVertical)
	if p.Filled() {
		t.Fatal("new pipe should be unfilled")
	}
	if p.Rune() != '║' {
		t.Errorf("unfilled rune = %q", p.Rune())
	}
	if core.ShapeVertical.FilledRune() != '┃' {
		t.Errorf("filled rune = %q", core.ShapeVertical.FilledRune())
	}
}

func TestParseShapeRejectsFilledGlyph(t *testing.T) {
	if _, ok := core.ParseShape('━'); ok {
		t.Error("filled glyph should not parse as a shape")
	}
}

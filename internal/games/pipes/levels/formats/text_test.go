package formats

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

const sample = `5
6
4
WWWWWW
W>═╗.W
W..║.W
W..╚═<
WWWWWW
`

func TestParseText(t *testing.T) {
	lvl, err := ParseText([]byte(sample))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	p := lvl.Props
	if p.Rows != 5 || p.Cols != 6 || p.Delay != 4 {
		t.Errorf("got %dx%d delay %d", p.Rows, p.Cols, p.Delay)
	}

	src, ok := p.At(1, 1).(*core.TerminationCell)
	if !ok || src.Kind() != core.KindSource || src.PointingTo() != core.DirRight {
		t.Errorf("unexpected source %v", p.At(1, 1))
	}
	sink, ok := p.At(3, 5).(*core.TerminationCell)
	if !ok || sink.Kind() != core.KindSink || sink.PointingTo() != core.DirLeft {
		t.Errorf("unexpected sink %v", p.At(3, 5))
	}
	pipe, ok := p.At(1, 3).(*core.FillableCell)
	if !ok || pipe.Pipe() == nil || pipe.Pipe().Shape() != core.ShapeBottomLeft {
		t.Errorf("unexpected cell at (1,3): %v", p.At(1, 3))
	}
	if len(p.Pipes) != 0 {
		t.Errorf("unexpected queue %v", p.Pipes)
	}
}

func TestTextRoundTrip(t *testing.T) {
	// One source, one sink and three placed pipes.
	e := core.NewEditor(5, 5, 7)
	e.SetTile(core.TileTermination, core.C(2, 2))
	e.ToggleSourceRotation()
	e.SetTile(core.TileTermination, core.C(4, 3))
	e.SetTile(core.TileWall, core.C(1, 1))
	p := e.Properties()
	p.Cells[1*5+3] = core.NewFillableCellWithPipe(core.C(1, 3), core.NewPipe(core.ShapeCross))
	p.Cells[2*5+3] = core.NewFillableCellWithPipe(core.C(2, 3), core.NewPipe(core.ShapeBottomLeft))
	p.Cells[3*5+3] = core.NewFillableCellWithPipe(core.C(3, 3), core.NewPipe(core.ShapeVertical))
	p.Pipes = []core.Shape{core.ShapeTopLeft, core.ShapeHorizontal}
	if err := p.Validate(); err != nil {
		t.Fatalf("hand-built map invalid: %v", err)
	}

	var sb strings.Builder
	if err := WriteText(&sb, p); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	lvl, err := ParseText([]byte(sb.String()))
	if err != nil {
		t.Fatalf("ParseText failed: %v\n%s", err, sb.String())
	}

	got := lvl.Props
	if got.Rows != p.Rows || got.Cols != p.Cols || got.Delay != p.Delay {
		t.Fatalf("header mismatch: %dx%d/%d vs %dx%d/%d", got.Rows, got.Cols, got.Delay, p.Rows, p.Cols, p.Delay)
	}
	for i := range p.Cells {
		a, b := p.Cells[i], got.Cells[i]
		if a.Coord() != b.Coord() || a.SerializedRune() != b.SerializedRune() {
			t.Errorf("cell %d: %s %q vs %s %q", i, a.Coord(), a.SerializedRune(), b.Coord(), b.SerializedRune())
		}
		if ta, ok := a.(*core.TerminationCell); ok {
			tb, ok := b.(*core.TerminationCell)
			if !ok || ta.Kind() != tb.Kind() || ta.PointingTo() != tb.PointingTo() {
				t.Errorf("termination at %s changed", a.Coord())
			}
		}
	}
	if !slices.Equal(got.Pipes, p.Pipes) {
		t.Errorf("queue %v, want %v", got.Pipes, p.Pipes)
	}
}

func TestWriteTextSkipsFillState(t *testing.T) {
	lvl, err := ParseText([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	m, err := core.NewMap(lvl.Props.Rows, lvl.Props.Cols, lvl.Props.Cells)
	if err != nil {
		t.Fatal(err)
	}
	m.FillBeginTile()
	m.FillTiles(3)

	var sb strings.Builder
	if err := WriteText(&sb, m.Properties(lvl.Props.Delay)); err != nil {
		t.Fatal(err)
	}
	if sb.String() != sample {
		t.Errorf("written map differs:\n%s\nwant\n%s", sb.String(), sample)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{"short header", "3\n3\n", core.CodeBadHeader},
		{"bad rows", "x\n5\n1\n", core.CodeBadHeader},
		{"bad delay", "3\n5\nsoon\nWWWWW\nW>..<\nWWWWW\n", core.CodeBadHeader},
		{"tiny", "1\n1\n1\nW\n", core.CodeBadDims},
		{"missing rows", "3\n5\n1\nWWWWW\nW>..<\n", core.CodeNotRectangular},
		{"ragged", "3\n5\n1\nWWWWW\nW>.<\nWWWWW\n", core.CodeNotRectangular},
		{"huge cols", "3\n4000000000000\n5\nWWW\nW>W\nWvW\n", core.CodeNotRectangular},
		{"overflowing cols", "3\n9223372036854775807\n5\nWWW\nW>W\nWvW\n", core.CodeNotRectangular},
		{"unknown tile", "3\n5\n1\nWWWWW\nW>.x<\nWWWWW\n", core.CodeUnknownGlyph},
		{"unknown pipe", "3\n5\n1\nWWWWW\nW>..<\nWWWWW\n═x\n", core.CodeUnknownGlyph},
		{"trailing lines", "3\n5\n1\nWWWWW\nW>..<\nWWWWW\n═\n═\n", core.CodeNotRectangular},
		{"zero delay", "3\n5\n0\nWWWWW\nW>..<\nWWWWW\n", core.CodeBadDelay},
		{"no sink", "3\n5\n1\nWWWWW\nW>..W\nWWWWW\n", core.CodeMissingSink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText([]byte(tt.data))
			var me core.MapError
			if !errors.As(err, &me) {
				t.Fatalf("expected MapError, got %v", err)
			}
			if me.Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", me.Code, tt.code, me.Message)
			}
		})
	}
}

func TestParseTextCRLF(t *testing.T) {
	data := strings.ReplaceAll(sample, "\n", "\r\n")
	if _, err := ParseText([]byte(data)); err != nil {
		t.Errorf("CRLF map rejected: %v", err)
	}
}

package formats

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

const sampleYAML = `id: bend
name: Bend
delay: 3
grid:
  - WWWWW
  - W>╗.W
  - W.║.W
  - W.╚.<
  - WWWWW
pipes: ═╬
`

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "bend" || lvl.Name != "Bend" {
		t.Errorf("got id %q name %q", lvl.ID, lvl.Name)
	}
	if lvl.Props.Rows != 5 || lvl.Props.Cols != 5 || lvl.Props.Delay != 3 {
		t.Errorf("got %dx%d delay %d", lvl.Props.Rows, lvl.Props.Cols, lvl.Props.Delay)
	}
	want := []core.Shape{core.ShapeHorizontal, core.ShapeCross}
	if !slices.Equal(lvl.Props.Pipes, want) {
		t.Errorf("Pipes = %v, want %v", lvl.Props.Pipes, want)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalYAML(lvl)
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}
	again, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML of marshalled level failed: %v\n%s", err, data)
	}
	if !slices.Equal(GridLines(again.Props), GridLines(lvl.Props)) {
		t.Errorf("grid changed:\n%v\n%v", GridLines(again.Props), GridLines(lvl.Props))
	}
	if again.ID != lvl.ID || again.Props.Delay != lvl.Props.Delay {
		t.Error("metadata changed")
	}
}

func TestParseYAMLEmptyGrid(t *testing.T) {
	if _, err := ParseYAML([]byte("id: x\ndelay: 1\n")); err == nil {
		t.Error("expected error for missing grid")
	}
}

package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

func TestNewEditorBorder(t *testing.T) {
	e := core.NewEditor(4, 5, 3)
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			cell := e.At(core.C(r, c))
			border := r == 0 || r == 3 || c == 0 || c == 4
			_, isWall := cell.(*core.Wall)
			_, isFillable := cell.(*core.FillableCell)
			if border && !isWall {
				t.Errorf("border %s is %T", core.C(r, c), cell)
			}
			if !border && !isFillable {
				t.Errorf("interior %s is %T", core.C(r, c), cell)
			}
		}
	}
}

func TestEditorValidationMessages(t *testing.T) {
	e := core.NewEditor(4, 4, 2)

	wantMessage := func(msg string) {
		t.Helper()
		var me core.MapError
		err := e.Validate()
		if !errors.As(err, &me) {
			t.Fatalf("expected MapError, got %v", err)
		}
		if me.Message != msg {
			t.Errorf("message = %q, want %q", me.Message, msg)
		}
	}

	wantMessage("Source tile is missing!")

	// Source facing up at (1,1) looks straight at the wall.
	e.SetTile(core.TileTermination, core.C(1, 1))
	wantMessage("Sink tile is missing!")

	e.SetTile(core.TileTermination, core.C(2, 3))
	wantMessage("Source tile is blocked by a wall!")

	e.ToggleSourceRotation()
	if err := e.Validate(); err != nil {
		t.Fatalf("expected valid map, got %v", err)
	}

	e.SetTile(core.TileWall, core.C(2, 2))
	wantMessage("Sink tile is blocked by a wall!")

	e.SetTile(core.TileCell, core.C(2, 2))
	e.SetDelay(0)
	wantMessage("Delay must be a positive value!")
}

func TestEditorTerminationPlacement(t *testing.T) {
	e := core.NewEditor(5, 5, 1)

	if e.SetTile(core.TileTermination, core.C(0, 0)) {
		t.Error("termination accepted on a corner")
	}

	tests := []struct {
		at   core.Coordinate
		want core.Direction
	}{
		{core.C(0, 2), core.DirDown},
		{core.C(4, 2), core.DirUp},
		{core.C(2, 0), core.DirRight},
		{core.C(2, 4), core.DirLeft},
	}
	for _, tt := range tests {
		if !e.SetTile(core.TileTermination, tt.at) {
			t.Fatalf("SetTile at %s failed", tt.at)
		}
		sink, ok := e.At(tt.at).(*core.TerminationCell)
		if !ok || sink.Kind() != core.KindSink || sink.PointingTo() != tt.want {
			t.Errorf("at %s got %v, want sink pointing %s", tt.at, e.At(tt.at), tt.want)
		}
	}

	// Only the last sink is kept; earlier ones went back to walls.
	if _, ok := e.At(core.C(0, 2)).(*core.Wall); !ok {
		t.Error("replaced sink was not turned back into a wall")
	}

	e.SetTile(core.TileTermination, core.C(1, 1))
	e.SetTile(core.TileTermination, core.C(3, 3))
	if _, ok := e.At(core.C(1, 1)).(*core.FillableCell); !ok {
		t.Error("replaced source was not turned back into a cell")
	}
	src, ok := e.At(core.C(3, 3)).(*core.TerminationCell)
	if !ok || src.Kind() != core.KindSource {
		t.Fatal("interior termination is not the source")
	}
}

func TestEditorToggleSourceRotation(t *testing.T) {
	e := core.NewEditor(5, 5, 1)
	if e.ToggleSourceRotation() {
		t.Error("rotation without a source succeeded")
	}

	e.SetTile(core.TileTermination, core.C(2, 2))
	want := []core.Direction{core.DirRight, core.DirDown, core.DirLeft, core.DirUp}
	for _, d := range want {
		e.ToggleSourceRotation()
		if got := e.At(core.C(2, 2)).(*core.TerminationCell).PointingTo(); got != d {
			t.Errorf("PointingTo() = %s, want %s", got, d)
		}
	}
}

func TestEditorFromProperties(t *testing.T) {
	p := buildProps(t, 4, "WWWWW", "W>..<", "WWWWW")
	e := core.EditorFromProperties(p)
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// Moving the source keeps a single one.
	e.SetTile(core.TileTermination, core.C(1, 2))
	if _, ok := e.At(core.C(1, 1)).(*core.FillableCell); !ok {
		t.Error("old source not cleared")
	}
	if got := e.Properties().Delay; got != 4 {
		t.Errorf("Delay = %d, want 4", got)
	}
}

func TestGenerateIsPlayable(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 6}, {4, 4}, {8, 8}, {3, 10}}
	for _, sz := range sizes {
		for seed := int64(0); seed < 25; seed++ {
			p := core.Generate(sz[0], sz[1], 5, core.NewRand(seed))
			if p.Rows != sz[0]+2 || p.Cols != sz[1]+2 {
				t.Fatalf("size %v: got %dx%d", sz, p.Rows, p.Cols)
			}
			if err := p.Validate(); err != nil {
				t.Fatalf("size %v seed %d: %v", sz, seed, err)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := core.Generate(6, 6, 5, core.NewRand(3))
	b := core.Generate(6, 6, 5, core.NewRand(3))
	for i := range a.Cells {
		if a.Cells[i].SerializedRune() != b.Cells[i].SerializedRune() {
			t.Fatalf("cell %d differs between runs", i)
		}
	}
}

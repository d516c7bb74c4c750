package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

func TestValidateCells(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		code string
	}{
		{"valid", []string{"WWWWW", "W>..<", "WWWWW"}, ""},
		{"missing source", []string{"WWWWW", "W...<", "WWWWW"}, core.CodeMissingSource},
		{"missing sink", []string{"WWWWW", "W>..W", "WWWWW"}, core.CodeMissingSink},
		{"two sources", []string{"WWWWW", "W>.>W", "W...W", "WW^WW"}, core.CodeMultipleSources},
		{"two sinks", []string{"WWWWW", "W>..<", "WWW^W"}, core.CodeMultipleSinks},
		{"sink facing outwards", []string{"WWWWW", "W>..>", "WWWWW"}, core.CodeSinkNotInward},
		{"sink on corner", []string{"WWWW<", "W>..W", "WWWWW"}, core.CodeBadBorder},
		{"open border", []string{"WW.WW", "W>..<", "WWWWW"}, core.CodeBadBorder},
		{"source facing wall", []string{"WWWWW", "W<..<", "WWWWW"}, core.CodeSourceToWall},
		{"sink facing wall", []string{"WWWWW", "W>.W<", "WWWWW"}, core.CodeSinkToWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildProps(t, 1, tt.rows...)
			err := core.ValidateCells(p.Rows, p.Cols, p.Cells)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

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

func TestValidateDims(t *testing.T) {
	err := core.ValidateCells(1, 5, nil)
	var me core.MapError
	if !errors.As(err, &me) || me.Code != core.CodeBadDims {
		t.Fatalf("expected BAD_DIMS, got %v", err)
	}
	if me.Message != "Map size must be at least 2x2!" {
		t.Errorf("unexpected message %q", me.Message)
	}

	p := buildProps(t, 1, "WWWWW", "W>..<", "WWWWW")
	err = core.ValidateCells(3, 4, p.Cells)
	if !errors.As(err, &me) || me.Code != core.CodeNotRectangular {
		t.Errorf("expected NOT_RECTANGULAR, got %v", err)
	}
}

func TestPropertiesValidateDelay(t *testing.T) {
	p := buildProps(t, 0, "WWWWW", "W>..<", "WWWWW")
	var me core.MapError
	if err := p.Validate(); !errors.As(err, &me) || me.Code != core.CodeBadDelay {
		t.Fatalf("expected BAD_DELAY, got %v", err)
	}

	p.Delay = 3
	if err := p.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewMapRejectsInvalid(t *testing.T) {
	p := buildProps(t, 1, "WWWWW", "W...<", "WWWWW")
	m, err := core.NewMap(p.Rows, p.Cols, p.Cells)
	if err == nil || m != nil {
		t.Fatal("NewMap accepted a map without source")
	}
}

func TestCellFromRuneUnknown(t *testing.T) {
	_, err := core.CellFromRune('x', core.C(1, 1), 3, 3)
	var me core.MapError
	if !errors.As(err, &me) || me.Code != core.CodeUnknownGlyph {
		t.Errorf("expected UNKNOWN_GLYPH, got %v", err)
	}
}

func TestCellFromRuneTerminationKind(t *testing.T) {
	inner, err := core.CellFromRune('>', core.C(1, 1), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if inner.(*core.TerminationCell).Kind() != core.KindSource {
		t.Error("interior termination should be the source")
	}

	edge, err := core.CellFromRune('<', core.C(1, 3), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if edge.(*core.TerminationCell).Kind() != core.KindSink {
		t.Error("border termination should be the sink")
	}
}

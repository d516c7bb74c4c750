package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// buildProps parses map rows written with map-file glyphs.
func buildProps(t *testing.T, delay int, rows ...string) core.Properties {
	t.Helper()

	cols := len([]rune(rows[0]))
	cells := make([]core.Cell, 0, len(rows)*cols)
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			t.Fatalf("row %d has %d tiles, want %d", r, len(runes), cols)
		}
		for c, ch := range runes {
			cell, err := core.CellFromRune(ch, core.C(r, c), len(rows), cols)
			if err != nil {
				t.Fatalf("CellFromRune(%q): %v", ch, err)
			}
			cells = append(cells, cell)
		}
	}
	return core.Properties{Rows: len(rows), Cols: cols, Delay: delay, Cells: cells}
}

// buildMap parses rows into a validated map.
func buildMap(t *testing.T, rows ...string) *core.Map {
	t.Helper()

	p := buildProps(t, 1, rows...)
	m, err := core.NewMap(p.Rows, p.Cols, p.Cells)
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	return m
}

func filledSet(m *core.Map) map[core.Coordinate]bool {
	out := make(map[core.Coordinate]bool)
	for _, c := range m.FilledCoords() {
		out[c] = true
	}
	return out
}

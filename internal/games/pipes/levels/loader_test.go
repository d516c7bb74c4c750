package levels_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.map and README.txt are skipped.
	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Corner" {
		t.Errorf("expected Name 'Corner', got %q", lvl.Name)
	}
	if lvl.Props.Rows != 6 || lvl.Props.Cols != 7 || lvl.Props.Delay != 6 {
		t.Errorf("got %dx%d delay %d", lvl.Props.Rows, lvl.Props.Cols, lvl.Props.Delay)
	}
	if len(lvl.Props.Pipes) != 5 {
		t.Errorf("expected 5 queued pipes, got %d", len(lvl.Props.Pipes))
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoadFileDefaultsIDFromName(t *testing.T) {
	lvl, err := levels.LoadFile(filepath.Join(getTestdataPath(), "lvl01.map"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.ID != "lvl01" || lvl.Name != "lvl01" {
		t.Errorf("got id %q name %q", lvl.ID, lvl.Name)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	_, err := levels.LoadFile(filepath.Join(getTestdataPath(), "broken.map"))
	if err == nil {
		t.Fatal("expected error for map without sink")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	props := core.Generate(3, 4, 5, core.NewRand(11))
	dir := t.TempDir()

	for _, name := range []string{"gen.map", "gen.yaml"} {
		path := filepath.Join(dir, "nested", name)
		if err := levels.SaveFile(path, levels.Level{ID: "gen", Name: "Generated", Props: props}); err != nil {
			t.Fatalf("SaveFile(%s) failed: %v", name, err)
		}
		lvl, err := levels.LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) failed: %v", name, err)
		}
		if lvl.ID != "gen" {
			t.Errorf("%s: ID = %q", name, lvl.ID)
		}
		for i := range props.Cells {
			if props.Cells[i].SerializedRune() != lvl.Props.Cells[i].SerializedRune() {
				t.Fatalf("%s: cell %d changed", name, i)
			}
		}
	}

	if err := levels.SaveFile(filepath.Join(dir, "gen.txt"), levels.Level{Props: props}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestCampaign(t *testing.T) {
	lvls, err := levels.NewLoader(getTestdataPath()).LoadAll()
	if err != nil {
		t.Fatal(err)
	}

	c := levels.NewCampaign(lvls, 1)
	cur, ok := c.Current()
	if !ok || cur.ID != "lvl02" {
		t.Fatalf("Current() = %q, %v", cur.ID, ok)
	}
	if !c.Advance() {
		t.Fatal("expected a third level")
	}
	if c.Advance() {
		t.Error("Advance past the last level reported more levels")
	}
	if _, ok := c.Current(); ok {
		t.Error("Current() after the end should report false")
	}
	if c.Advance() || c.Index() != c.Len() {
		t.Error("Advance after the end moved the index")
	}

	if got := levels.NewCampaign(lvls, 99).Index(); got != len(lvls) {
		t.Errorf("start clamped to %d, want %d", got, len(lvls))
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{LevelID: "lvl01", Won: false, Steps: 3, Ticks: 20},
		{LevelID: "lvl01", Won: true, Steps: 12, Undos: 2, Ticks: 40},
		{LevelID: "lvl01", Won: true, Steps: 9, Ticks: 35},
		{LevelID: "lvl02", Won: true, Steps: 5, Ticks: 18},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns("lvl01", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Wins first, fewest steps first
	if !got[0].Won || got[0].Steps != 9 {
		t.Errorf("best run = %+v, want the 9-step win", got[0])
	}
	if !got[1].Won || got[1].Steps != 12 || got[1].Undos != 2 {
		t.Errorf("second run = %+v, want the 12-step win", got[1])
	}
	if got[2].Won {
		t.Errorf("lost run should come last, got %+v", got[2])
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].LevelID != "lvl02" {
		t.Errorf("TopRuns(\"\") = %+v, want 4 runs led by lvl02", all)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{LevelID: "test", Won: true, Steps: 10 - i})
	}

	got, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(got))
	}
	if got[0].Steps != 6 || got[1].Steps != 7 || got[2].Steps != 8 {
		t.Errorf("Runs not in expected order: %+v", got)
	}
}

func TestStoreSaveRunRequiresLevel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunRecord{Won: true}); err == nil {
		t.Error("SaveRun accepted a run without level id")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{LevelID: "a", Won: true, Steps: 4})
	store.SaveRun(RunRecord{LevelID: "b", Won: true, Steps: 4})

	if err := store.ClearRuns("a"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("a", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("b", 10); len(runs) != 1 {
		t.Error("Other levels should not be affected by clear")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats("none")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Played != 0 || empty.Wins != 0 || empty.BestSteps != 0 {
		t.Errorf("stats for unplayed level = %+v", empty)
	}

	store.SaveRun(RunRecord{LevelID: "lvl01", Won: false, Steps: 2})
	store.SaveRun(RunRecord{LevelID: "lvl01", Won: true, Steps: 11})
	store.SaveRun(RunRecord{LevelID: "lvl01", Won: true, Steps: 8})
	store.SaveRun(RunRecord{LevelID: "lvl02", Won: false, Steps: 1})

	stats, err := store.GetLevelStats("lvl01")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Played != 3 || stats.Wins != 2 || stats.BestSteps != 8 {
		t.Errorf("lvl01 stats = %+v", stats)
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if s := all["lvl02"]; s.Played != 1 || s.Wins != 0 || s.BestSteps != 0 {
		t.Errorf("lvl02 stats = %+v", s)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

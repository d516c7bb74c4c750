package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipes.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPipesEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPipes("")
	if err != nil {
		t.Fatalf("LoadPipes: %v", err)
	}
	if cfg != DefaultPipesConfig() {
		t.Errorf("embedded config %+v differs from DefaultPipesConfig %+v", cfg, DefaultPipesConfig())
	}
}

func TestLoadPipesCustomPath(t *testing.T) {
	path := writeConfig(t, "grid:\n  rows: 4\nflow:\n  cadence: 2\n")

	cfg, err := LoadPipes(path)
	if err != nil {
		t.Fatalf("LoadPipes: %v", err)
	}
	if cfg.Grid.Rows != 4 || cfg.Flow.Cadence != 2 {
		t.Errorf("got rows=%d cadence=%d, want 4 and 2", cfg.Grid.Rows, cfg.Flow.Cadence)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Grid.Cols != 8 || cfg.Flow.Delay != 10 || cfg.Queue.Size != 5 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadPipesErrors(t *testing.T) {
	if _, err := LoadPipes(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := writeConfig(t, "grid: [1, 2\n")
	if _, err := LoadPipes(path); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadPipesEnvOverrides(t *testing.T) {
	path := writeConfig(t, "grid:\n  rows: 4\n")
	t.Setenv("PIPES_ROWS", "12")
	t.Setenv("PIPES_TICK_MS", "250")
	t.Setenv("PIPES_DB", "/tmp/runs.db")

	cfg, err := LoadPipes(path)
	if err != nil {
		t.Fatalf("LoadPipes: %v", err)
	}
	if cfg.Grid.Rows != 12 {
		t.Errorf("Rows = %d, want 12", cfg.Grid.Rows)
	}
	if cfg.TickInterval() != 250*time.Millisecond {
		t.Errorf("TickInterval() = %v", cfg.TickInterval())
	}
	if cfg.Paths.DBPath() != "/tmp/runs.db" {
		t.Errorf("DBPath() = %q", cfg.Paths.DBPath())
	}

	t.Setenv("PIPES_COLS", "many")
	if _, err := LoadPipes(path); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("expected env error, got %v", err)
	}
}

func TestLoadPipesNormalizes(t *testing.T) {
	path := writeConfig(t, "flow:\n  delay: 0\n  cadence: -3\nqueue:\n  size: 0\n")

	cfg, err := LoadPipes(path)
	if err != nil {
		t.Fatalf("LoadPipes: %v", err)
	}
	if cfg.Flow.Delay != 10 || cfg.Flow.Cadence != 5 || cfg.Queue.Size != 5 {
		t.Errorf("non-positive values not replaced: %+v", cfg)
	}
}

func TestPathsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var p PathsConfig
	if got, want := p.DBPath(), filepath.Join(home, ".pipes", "pipes.db"); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}
	if got, want := p.LogPath(), filepath.Join(home, ".pipes", "pipes.log"); got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		delay, cad  int
		queueLength int
	}{
		{DifficultyEasy, 15, 7, 5},
		{DifficultyNormal, 10, 5, 5},
		{DifficultyHard, 5, 2, 3},
	}
	for _, tt := range tests {
		cfg := DefaultPipesConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Flow.Delay != tt.delay || cfg.Flow.Cadence != tt.cad || cfg.Queue.Size != tt.queueLength {
			t.Errorf("%s: got delay=%d cadence=%d queue=%d", tt.preset, cfg.Flow.Delay, cfg.Flow.Cadence, cfg.Queue.Size)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) failed", s)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset accepted an unknown preset")
	}
}

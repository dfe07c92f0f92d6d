package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p != Default() {
		t.Errorf("Load() = %+v, want defaults", p)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("width: 1024\nshow_fps: true\nseed: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Width != 1024 || !p.ShowFPS || p.Seed != 9 {
		t.Errorf("Load() = %+v", p)
	}
	if p.Height != 600 || p.TargetFPS != 60 {
		t.Errorf("unset fields lost defaults: %+v", p)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("width: [oops\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for malformed YAML")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "arena.yaml")
	p := Default()
	p.ShowStats = true
	p.Height = 720
	if err := Save(path, p); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != p {
		t.Errorf("Load() = %+v, want %+v", got, p)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ARENA_WIDTH", "1280")
	t.Setenv("ARENA_HEIGHT", "bogus")
	t.Setenv("ARENA_SEED", "77")
	t.Setenv("ARENA_LOG", "/tmp/x.txt")
	t.Setenv("ARENA_FPS", "")

	p := ApplyEnv(Default())
	if p.Width != 1280 || p.Seed != 77 || p.LogPath != "/tmp/x.txt" {
		t.Errorf("ApplyEnv() = %+v", p)
	}
	if p.Height != 600 || p.TargetFPS != 60 {
		t.Errorf("invalid or empty values applied: %+v", p)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
	p := Default()
	p.Width = 0
	if p.Validate() == nil {
		t.Error("zero width accepted")
	}
	p = Default()
	p.TargetFPS = -1
	if p.Validate() == nil {
		t.Error("negative fps accepted")
	}
}

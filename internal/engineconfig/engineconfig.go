package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/arena.yaml"

// Prefs holds window, scheduling and overlay preferences. The scene itself is fixed;
// only the arena size and the random seed for initial velocities are configurable.
type Prefs struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	TargetFPS    int    `yaml:"target_fps"`
	Seed         int64  `yaml:"seed"` // 0 = seed from the clock
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	ShowStats    bool   `yaml:"show_stats"`
	LogPath      string `yaml:"log_path"`
}

// Default returns the reference 800×600 arena at 60 FPS with overlays off.
func Default() Prefs {
	return Prefs{
		Title:     "disc arena",
		Width:     800,
		Height:    600,
		TargetFPS: 60,
		LogPath:   "logs/arena.txt",
	}
}

// Load reads preferences from path. A missing file yields Default() and no error;
// fields absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides p from ARENA_WIDTH, ARENA_HEIGHT, ARENA_FPS, ARENA_SEED and ARENA_LOG.
// Values that do not parse are ignored.
func ApplyEnv(p Prefs) Prefs {
	if n, ok := envInt("ARENA_WIDTH"); ok {
		p.Width = int(n)
	}
	if n, ok := envInt("ARENA_HEIGHT"); ok {
		p.Height = int(n)
	}
	if n, ok := envInt("ARENA_FPS"); ok {
		p.TargetFPS = int(n)
	}
	if n, ok := envInt("ARENA_SEED"); ok {
		p.Seed = n
	}
	if v := os.Getenv("ARENA_LOG"); v != "" {
		p.LogPath = v
	}
	return p
}

func envInt(key string) (int64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate reports the first preference that cannot run.
func (p Prefs) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("arena size %dx%d must be positive", p.Width, p.Height)
	case p.TargetFPS <= 0:
		return fmt.Errorf("target_fps %d must be positive", p.TargetFPS)
	}
	return nil
}

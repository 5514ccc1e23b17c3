package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/profile files.
type Paths struct {
	BaseDir string // base directory, e.g., ./configs
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) ProfileDir() string {
	return filepath.Join(p.BaseDir, "profiles")
}
func (p Paths) ProfilePath(profile string) string {
	return filepath.Join(p.ProfileDir(), profile+".yaml")
}

// Loader reads YAML configs and merges default → profile.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: profile name, "" for default only
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

func (l *Loader) Paths() Paths { return l.paths }

// LoadMerged loads default.yaml and lays the profile (optional) over it.
// Missing files read as empty; a named profile that does not exist is an error.
func (l *Loader) LoadMerged(profile string) (RawConfig, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[profile]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if profile != "" {
		path := l.paths.ProfilePath(profile)
		if _, err := os.Stat(path); err != nil {
			return RawConfig{}, fmt.Errorf("profile %q: %w", profile, err)
		}
		profCfg, err := readYAML(path)
		if err != nil {
			return RawConfig{}, fmt.Errorf("read profile %q: %w", profile, err)
		}
		merged = mergeRaw(defCfg, profCfg)
	}

	l.mu.Lock()
	l.cache[profile] = merged
	l.mu.Unlock()
	return merged, nil
}

// Invalidate clears loader's cache. Call after the watcher detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// mergeRaw overlays b on a: every field set in b wins.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// game
	out.Game.Cups = pick(a.Game.Cups, b.Game.Cups)
	out.Game.MinSwaps = pick(a.Game.MinSwaps, b.Game.MinSwaps)
	out.Game.MaxSwaps = pick(a.Game.MaxSwaps, b.Game.MaxSwaps)

	// run
	out.Run.Iterations = pick(a.Run.Iterations, b.Run.Iterations)
	out.Run.Seed = pick(a.Run.Seed, b.Run.Seed)
	out.Run.Workers = pick(a.Run.Workers, b.Run.Workers)

	// plot
	switch {
	case a.Plot == nil && b.Plot != nil:
		c := *b.Plot
		out.Plot = &c
	case a.Plot != nil && b.Plot != nil:
		c := *a.Plot
		if b.Plot.Output != "" {
			c.Output = b.Plot.Output
		}
		if b.Plot.Title != "" {
			c.Title = b.Plot.Title
		}
		c.WidthIn = pick(c.WidthIn, b.Plot.WidthIn)
		c.HeightIn = pick(c.HeightIn, b.Plot.HeightIn)
		c.ShowExpected = pick(c.ShowExpected, b.Plot.ShowExpected)
		out.Plot = &c
	}
	return out
}

func pick[T any](base, over *T) *T {
	if over != nil {
		return over
	}
	return base
}

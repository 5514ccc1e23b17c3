package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/shellgame/internal/progress"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

const defaultYAML = `version: "1"
game:
  cups: 3
  min_swaps: 2
  max_swaps: 16
run:
  iterations: 500000
plot:
  output: plots/accuracyPlot.png
  show_expected: false
`

func TestLoadMergedProfileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	writeFile(t, l.Paths().DefaultPath(), defaultYAML)
	writeFile(t, l.Paths().ProfilePath("quick"), `version: "1-quick"
run:
  iterations: 1000
  seed: 42
plot:
  show_expected: true
`)

	cfg, err := l.LoadMerged("quick")
	require.NoError(t, err)
	assert.Equal(t, "1-quick", cfg.Version)
	assert.Equal(t, 3, *cfg.Game.Cups)
	assert.Equal(t, 1000, *cfg.Run.Iterations)
	assert.Equal(t, uint64(42), *cfg.Run.Seed)
	require.NotNil(t, cfg.Plot)
	assert.Equal(t, "plots/accuracyPlot.png", cfg.Plot.Output)
	assert.True(t, *cfg.Plot.ShowExpected)

	def, err := l.LoadMerged("")
	require.NoError(t, err)
	assert.Equal(t, 500000, *def.Run.Iterations)
	assert.False(t, *def.Plot.ShowExpected)
}

func TestLoadMergedMissingFiles(t *testing.T) {
	l := NewLoader(t.TempDir())
	cfg, err := l.LoadMerged("")
	require.NoError(t, err)
	assert.Equal(t, RawConfig{}, cfg)

	_, err = l.LoadMerged("nope")
	assert.Error(t, err)
}

func TestLoadMergedBadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "default.yaml"), "game: [")
	_, err := NewLoader(dir).LoadMerged("")
	assert.Error(t, err)
}

func TestLoaderCacheAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	writeFile(t, l.Paths().DefaultPath(), "run:\n  iterations: 10\n")

	cfg, err := l.LoadMerged("")
	require.NoError(t, err)
	assert.Equal(t, 10, *cfg.Run.Iterations)

	writeFile(t, l.Paths().DefaultPath(), "run:\n  iterations: 20\n")
	cfg, _ = l.LoadMerged("")
	assert.Equal(t, 10, *cfg.Run.Iterations, "served from cache")

	l.Invalidate()
	cfg, _ = l.LoadMerged("")
	assert.Equal(t, 20, *cfg.Run.Iterations)
}

func TestValidateRawCollectsEveryProblem(t *testing.T) {
	one, zero, neg := 1, 0, -1
	w := 0.0
	cfg := RawConfig{
		Game: GameConfig{Cups: &one, MinSwaps: &zero},
		Run:  RunConfig{Iterations: &zero, Workers: &neg},
		Plot: &PlotConfig{Output: "out.txt", WidthIn: &w},
	}
	err := ValidateRaw(cfg)
	require.Error(t, err)
	for _, want := range []string{
		"game.cups", "game.min_swaps", "run.iterations", "run.workers", "plot.width_in", "plot.output",
	} {
		assert.Contains(t, err.Error(), want)
	}
	assert.NoError(t, ValidateRaw(RawConfig{}))
}

func TestApplyDefaults(t *testing.T) {
	s, err := Apply(RawConfig{}, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Cups)
	assert.Equal(t, 2, s.MinSwaps)
	assert.Equal(t, 16, s.MaxSwaps)
	assert.Equal(t, 500000, s.Iterations)
	assert.Nil(t, s.Seed)
	assert.Equal(t, DefaultOutput, s.Output)
	assert.Equal(t, 16.0, s.WidthIn)
	assert.NoError(t, s.Params().Validate())
}

func TestApplyOverridesWin(t *testing.T) {
	it, out, seed := 5000, "x.svg", uint64(9)
	fileIt := 10
	raw := RawConfig{Run: RunConfig{Iterations: &fileIt}}
	s, err := Apply(raw, Overrides{Iterations: &it, Output: &out, Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, 5000, s.Iterations)
	assert.Equal(t, "x.svg", s.Output)
	assert.Equal(t, uint64(9), *s.Seed)
	opts := s.SweepOptions(nil)
	assert.Equal(t, uint64(9), *opts.Seed)
	assert.IsType(t, progress.Nop{}, opts.Reporter)
}

func TestApplyRejectsInvertedDefaults(t *testing.T) {
	// min_swaps above the default max
	lo := 20
	_, err := Apply(RawConfig{Game: GameConfig{MinSwaps: &lo}}, Overrides{})
	assert.Error(t, err)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SHELLGAME_ITERATIONS", "1234")
	t.Setenv("SHELLGAME_SEED", "77")
	t.Setenv("SHELLGAME_PROFILE", "quick")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "quick", e.Profile)
	o := e.Overrides()
	require.NotNil(t, o.Iterations)
	assert.Equal(t, 1234, *o.Iterations)
	assert.Equal(t, uint64(77), *o.Seed)
	assert.Nil(t, o.Cups)

	ten := 10
	merged := o.Merge(Overrides{Iterations: &ten})
	assert.Equal(t, 10, *merged.Iterations)
	assert.Equal(t, uint64(77), *merged.Seed)
}

func TestParseEnvBadValue(t *testing.T) {
	t.Setenv("SHELLGAME_CUPS", "three")
	_, err := ParseEnv()
	assert.ErrorContains(t, err, "parse env:")
}

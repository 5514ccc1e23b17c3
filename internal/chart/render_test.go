package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/xtding233/shellgame/internal/shell"
)

func sampleResult() shell.SweepResult {
	return shell.SweepResult{
		Swaps:  []int{2, 3, 4},
		Random: []float64{0.333, 0.334, 0.332},
		Smart:  []float64{0.5, 0.375, 0.376},
		Expected: map[shell.StrategyName][]float64{
			shell.StrategyRandom: {1.0 / 3, 1.0 / 3, 1.0 / 3},
			shell.StrategySmart:  {0.5, 0.375, 0.375},
		},
	}
}

func TestBuildAxes(t *testing.T) {
	p, err := Build(sampleResult(), Options{})
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, p.Title.Text)
	assert.Equal(t, "Number of Swaps", p.X.Label.Text)
	assert.Equal(t, "Guessing Accuracy Percentage", p.Y.Label.Text)
	assert.Equal(t, 0.30, p.Y.Min)
	assert.Equal(t, 0.55, p.Y.Max)

	yt := p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max)
	require.Len(t, yt, 26)
	assert.Equal(t, "30", yt[0].Label)
	assert.Equal(t, "55", yt[25].Label)

	xt := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	require.Len(t, xt, 3)
	assert.Equal(t, "2", xt[0].Label)
}

func TestBuildWidensBounds(t *testing.T) {
	res := sampleResult()
	res.Smart[0] = 0.615
	p, err := Build(res, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 0.62, p.Y.Max, 1e-9)
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(shell.SweepResult{}, Options{})
	assert.Error(t, err)
}

func TestRenderWritesFile(t *testing.T) {
	for _, name := range []string{"accuracy.png", "accuracy.svg"} {
		path := filepath.Join(t.TempDir(), name)
		err := Render(sampleResult(), path, Options{ShowExpected: true, Width: 4 * vg.Inch, Height: 3 * vg.Inch})
		require.NoError(t, err)

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, fi.Size())
	}
}

func TestRenderUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "accuracy.png")
	err := Render(sampleResult(), path, Options{})
	assert.Error(t, err)
}

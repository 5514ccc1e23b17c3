package shell

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReporter struct {
	trackers []*countingTracker
	labels   []string
	totals   []int
	mu       sync.Mutex
}

func (f *fakeReporter) Track(label string, total int) Tracker {
	f.mu.Lock()
	defer f.mu.Unlock()
	tr := &countingTracker{}
	f.trackers = append(f.trackers, tr)
	f.labels = append(f.labels, label)
	f.totals = append(f.totals, total)
	return tr
}

func TestSweepShape(t *testing.T) {
	seed := uint64(42)
	p := Params{Cups: 3, MinSwaps: 2, MaxSwaps: 16, Iterations: 2000}
	res, err := Sweep(context.Background(), p, SweepOptions{Seed: &seed, Workers: 4})
	require.NoError(t, err)

	require.Len(t, res.Swaps, 15)
	require.Len(t, res.Random, 15)
	require.Len(t, res.Smart, 15)
	assert.Equal(t, 2, res.Swaps[0])
	assert.Equal(t, 16, res.Swaps[14])
	for i := range res.Swaps {
		assert.True(t, res.Random[i] >= 0 && res.Random[i] <= 1)
		assert.True(t, res.Smart[i] >= 0 && res.Smart[i] <= 1)
	}
	for _, s := range Strategies {
		assert.Len(t, res.Expected[s], 15)
	}
}

func TestSweepReproducibleAcrossWorkerCounts(t *testing.T) {
	seed := uint64(7)
	p := Params{Cups: 3, MinSwaps: 2, MaxSwaps: 6, Iterations: 3000}
	a, err := Sweep(context.Background(), p, SweepOptions{Seed: &seed, Workers: 1})
	require.NoError(t, err)
	b, err := Sweep(context.Background(), p, SweepOptions{Seed: &seed, Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSweepTracksEveryJob(t *testing.T) {
	seed := uint64(1)
	p := Params{Cups: 3, MinSwaps: 2, MaxSwaps: 4, Iterations: 500}
	rep := &fakeReporter{}
	_, err := Sweep(context.Background(), p, SweepOptions{Seed: &seed, Workers: 2, Reporter: rep})
	require.NoError(t, err)

	require.Len(t, rep.trackers, 6)
	assert.ElementsMatch(t, []string{
		"random/2", "smart/2", "random/3", "smart/3", "random/4", "smart/4",
	}, rep.labels)
	for i, tr := range rep.trackers {
		assert.Equal(t, 500, rep.totals[i])
		assert.Equal(t, 500, tr.total)
		assert.Equal(t, 1, tr.done)
	}
}

func TestSweepRejectsInvalidParams(t *testing.T) {
	_, err := Sweep(context.Background(), Params{Cups: 1}, SweepOptions{})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := Params{Cups: 3, MinSwaps: 2, MaxSwaps: 16, Iterations: 1000}
	_, err := Sweep(ctx, p, SweepOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweepStats(t *testing.T) {
	res := SweepResult{
		Swaps:    []int{2, 3},
		Random:   []float64{0.3, 0.4},
		Expected: map[StrategyName][]float64{StrategyRandom: {1.0 / 3, 1.0 / 3}},
	}
	st := res.Stats(StrategyRandom)
	assert.InDelta(t, 0.35, st.Mean, 1e-12)
	assert.InDelta(t, 0.05, st.StdDev, 1e-12)
	assert.Equal(t, 0.3, st.Min)
	assert.Equal(t, 0.4, st.Max)
	assert.InDelta(t, 0.4-1.0/3, st.MaxDeviation, 1e-12)

	assert.Equal(t, SeriesStats{}, res.Stats(StrategySmart))
}

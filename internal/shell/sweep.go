package shell

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Reporter hands out one Tracker per evaluation job.
type Reporter interface {
	Track(label string, total int) Tracker
}

// SweepOptions controls how a sweep is executed. None of it changes the
// expected results.
type SweepOptions struct {
	// Seed makes the sweep reproducible. Each job derives its own stream
	// from it, so the worker count does not matter. nil draws fresh seeds.
	Seed *uint64
	// Workers caps concurrent jobs; <= 0 means GOMAXPROCS.
	Workers int
	// Reporter is optional.
	Reporter Reporter
}

// SweepResult holds one accuracy per swap count for each strategy.
type SweepResult struct {
	Swaps    []int
	Random   []float64
	Smart    []float64
	Expected map[StrategyName][]float64
}

// Series returns the measured accuracies of a strategy.
func (r SweepResult) Series(s StrategyName) []float64 {
	switch s {
	case StrategyRandom:
		return r.Random
	case StrategySmart:
		return r.Smart
	}
	return nil
}

type sweepJob struct {
	index    int // position in the swap range
	swaps    int
	strategy Strategy
	out      []float64
}

// Sweep evaluates every strategy for every swap count in
// [p.MinSwaps, p.MaxSwaps].
func Sweep(ctx context.Context, p Params, opts SweepOptions) (SweepResult, error) {
	if err := p.Validate(); err != nil {
		return SweepResult{}, err
	}
	swaps := p.SwapRange()
	res := SweepResult{
		Swaps:    swaps,
		Random:   make([]float64, len(swaps)),
		Smart:    make([]float64, len(swaps)),
		Expected: make(map[StrategyName][]float64, len(Strategies)),
	}
	for _, s := range Strategies {
		exp := make([]float64, len(swaps))
		for i, k := range swaps {
			exp[i] = Expected(s, p.Cups, k)
		}
		res.Expected[s] = exp
	}

	var jobs []sweepJob
	for i, k := range swaps {
		jobs = append(jobs,
			sweepJob{index: i, swaps: k, strategy: RandomGuess, out: res.Random},
			sweepJob{index: i, swaps: k, strategy: SmartGuess, out: res.Smart},
		)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for n, job := range jobs {
		if err := egCtx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			var rng RandomSource
			if opts.Seed != nil {
				rng = NewSeededRNG(*opts.Seed, uint64(n))
			} else {
				rng = DefaultRNG()
			}
			var tr Tracker
			if opts.Reporter != nil {
				label := fmt.Sprintf("%s/%d", job.strategy.Name(), job.swaps)
				tr = opts.Reporter.Track(label, p.Iterations)
			}
			// each job owns its slot
			job.out[job.index] = Evaluate(p, job.strategy, job.swaps, rng, tr)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return SweepResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return SweepResult{}, err
	}
	return res, nil
}

// SeriesStats summarizes one accuracy series against its closed form.
type SeriesStats struct {
	Mean         float64
	StdDev       float64
	Min          float64
	Max          float64
	MaxDeviation float64 // largest |measured - expected|
}

// Stats computes SeriesStats for strategy s.
func (r SweepResult) Stats(s StrategyName) SeriesStats {
	xs := r.Series(s)
	n := len(xs)
	if n == 0 {
		return SeriesStats{}
	}
	exp := r.Expected[s]

	st := SeriesStats{Min: xs[0], Max: xs[0]}
	var sum float64
	for i, v := range xs {
		sum += v
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
		if i < len(exp) {
			st.MaxDeviation = math.Max(st.MaxDeviation, math.Abs(v-exp[i]))
		}
	}
	st.Mean = sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := v - st.Mean
		acc += d * d
	}
	st.StdDev = math.Sqrt(acc / float64(n))
	return st
}

package shell

import (
	"errors"
	"fmt"
)

const (
	DefaultCups       = 3
	DefaultMinSwaps   = 2
	DefaultMaxSwaps   = 16
	DefaultIterations = 500000
)

var ErrInvalidParams = errors.New("invalid game params")

// Params describes the mechanics of one experiment.
type Params struct {
	Cups       int // number of cups, >= 2
	MinSwaps   int // lower bound when the swap count is drawn
	MaxSwaps   int // upper bound when the swap count is drawn
	Iterations int // trials per (strategy, swaps) evaluation
}

// DefaultParams returns the three-cup setup.
func DefaultParams() Params {
	return Params{
		Cups:       DefaultCups,
		MinSwaps:   DefaultMinSwaps,
		MaxSwaps:   DefaultMaxSwaps,
		Iterations: DefaultIterations,
	}
}

// Validate reports the first broken constraint.
func (p Params) Validate() error {
	switch {
	case p.Cups < 2:
		return fmt.Errorf("%w: cups must be >= 2, got %d", ErrInvalidParams, p.Cups)
	case p.MinSwaps < 1:
		return fmt.Errorf("%w: min swaps must be >= 1, got %d", ErrInvalidParams, p.MinSwaps)
	case p.MaxSwaps < p.MinSwaps:
		return fmt.Errorf("%w: max swaps %d below min swaps %d", ErrInvalidParams, p.MaxSwaps, p.MinSwaps)
	case p.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be > 0, got %d", ErrInvalidParams, p.Iterations)
	}
	return nil
}

// SwapRange lists every swap count from MinSwaps to MaxSwaps inclusive.
func (p Params) SwapRange() []int {
	if p.MaxSwaps < p.MinSwaps {
		return nil
	}
	out := make([]int, 0, p.MaxSwaps-p.MinSwaps+1)
	for k := p.MinSwaps; k <= p.MaxSwaps; k++ {
		out = append(out, k)
	}
	return out
}

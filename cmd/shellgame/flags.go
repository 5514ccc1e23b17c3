package main

import (
	"github.com/spf13/cobra"

	"github.com/xtding233/shellgame/internal/config"
)

var gameFlags struct {
	cups       int
	minSwaps   int
	maxSwaps   int
	iterations int
	seed       uint64
	workers    int
}

// addRangeFlags registers the game shape: cups and swap range.
func addRangeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&gameFlags.cups, "cups", 3, "number of cups")
	f.IntVar(&gameFlags.minSwaps, "min-swaps", 2, "smallest swap count")
	f.IntVar(&gameFlags.maxSwaps, "max-swaps", 16, "largest swap count")
}

// addGameFlags registers the range flags plus the ones that drive simulation.
func addGameFlags(cmd *cobra.Command) {
	addRangeFlags(cmd)
	f := cmd.Flags()
	f.IntVar(&gameFlags.iterations, "iterations", 500000, "trials per evaluation")
	f.Uint64Var(&gameFlags.seed, "seed", 0, "seed for reproducible runs (unset: random)")
	f.IntVar(&gameFlags.workers, "workers", 0, "concurrent evaluations (0: one per CPU)")
}

// flagOverrides keeps only the flags the user actually set. Flags a command
// does not register never count as set.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	f := cmd.Flags()
	if f.Changed("cups") {
		o.Cups = &gameFlags.cups
	}
	if f.Changed("min-swaps") {
		o.MinSwaps = &gameFlags.minSwaps
	}
	if f.Changed("max-swaps") {
		o.MaxSwaps = &gameFlags.maxSwaps
	}
	if f.Changed("iterations") {
		o.Iterations = &gameFlags.iterations
	}
	if f.Changed("seed") {
		o.Seed = &gameFlags.seed
	}
	if f.Changed("workers") {
		o.Workers = &gameFlags.workers
	}
	if f.Lookup("out") != nil && f.Changed("out") {
		o.Output = &sweepFlags.out
	}
	if f.Lookup("expected") != nil && f.Changed("expected") {
		o.ShowExpected = &sweepFlags.expected
	}
	return o
}

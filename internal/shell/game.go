package shell

import (
	"fmt"
	"io"
	"strings"
)

// Trial is one play of the game. Positions are 1-based.
type Trial struct {
	Initial int
	Swaps   int
	Final   int
}

// Walk plays one game and calls visit with the initial position and with the
// position after every swap. swaps <= 0 draws the count from
// [MinSwaps, MaxSwaps].
func (p Params) Walk(rng RandomSource, swaps int, visit func(pos int)) Trial {
	if swaps <= 0 {
		swaps = Between(rng, p.MinSwaps, p.MaxSwaps)
	}
	initial := Between(rng, 1, p.Cups)
	cur := initial
	if visit != nil {
		visit(cur)
	}
	for i := 0; i < swaps; i++ {
		// a swap always moves the item
		cur = DrawExcluding(rng, 1, p.Cups, cur)
		if visit != nil {
			visit(cur)
		}
	}
	return Trial{Initial: initial, Swaps: swaps, Final: cur}
}

// Play runs one game. If trace is non-nil a snapshot of the cups is written
// before each swap and after the last one.
func (p Params) Play(rng RandomSource, swaps int, trace io.Writer) Trial {
	if trace == nil {
		return p.Walk(rng, swaps, nil)
	}
	return p.Walk(rng, swaps, func(pos int) {
		fmt.Fprintln(trace, Snapshot(p.Cups, pos))
	})
}

// Snapshot renders the cups as a row, "x" marking the hidden item: "_x_".
func Snapshot(cups, pos int) string {
	var b strings.Builder
	b.Grow(cups)
	for c := 1; c <= cups; c++ {
		if c == pos {
			b.WriteByte('x')
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xtding233/shellgame/internal/shell"
)

var playFlags struct {
	swaps int
	trace bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game and print where the item ended up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		var trace io.Writer
		if playFlags.trace {
			trace = out
		}
		t := s.Params().Play(rngFor(s.Seed, 0), playFlags.swaps, trace)
		fmt.Fprintf(out, "start=%d swaps=%d final=%d\n", t.Initial, t.Swaps, t.Final)
		return nil
	},
}

func init() {
	playCmd.Flags().IntVar(&playFlags.swaps, "swaps", 0, "pin the swap count (0: draw from the range)")
	playCmd.Flags().BoolVarP(&playFlags.trace, "trace", "t", false, "print the cups before every swap")
}

func rngFor(seed *uint64, stream uint64) shell.RandomSource {
	if seed == nil {
		return shell.DefaultRNG()
	}
	return shell.NewSeededRNG(*seed, stream)
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xtding233/shellgame/internal/shell"
)

var theoryCmd = &cobra.Command{
	Use:   "theory",
	Short: "Print the exact accuracy of each strategy over the swap range",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		p := s.Params()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "swaps\treturn\trandom\tsmart")
		for _, k := range p.SwapRange() {
			fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\n", k,
				shell.ReturnProbability(p.Cups, k),
				shell.Expected(shell.StrategyRandom, p.Cups, k),
				shell.Expected(shell.StrategySmart, p.Cups, k))
		}
		return tw.Flush()
	},
}

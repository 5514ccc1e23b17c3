package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/shellgame/internal/progress"
	"github.com/xtding233/shellgame/internal/shell"
)

var evalFlags struct {
	strategy string
	swaps    int
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Measure one strategy's accuracy at a pinned swap count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		strat, err := shell.StrategyByName(shell.StrategyName(evalFlags.strategy))
		if err != nil {
			return err
		}
		if evalFlags.swaps < 1 {
			return fmt.Errorf("--swaps must be >= 1, got %d", evalFlags.swaps)
		}
		p := s.Params()
		label := fmt.Sprintf("%s/%d", strat.Name(), evalFlags.swaps)
		tr := progress.NewLogReporter(logger).Track(label, p.Iterations)
		acc := shell.Evaluate(p, strat, evalFlags.swaps, rngFor(s.Seed, 0), tr)
		exp := shell.Expected(strat.Name(), p.Cups, evalFlags.swaps)

		logger.Debug("evaluation done", zap.String("job", label), zap.Float64("accuracy", acc))
		fmt.Fprintf(cmd.OutOrStdout(), "The accuracy of the %s strategy is %.4f%% (expected %.4f%%)\n",
			strat.Name(), 100*acc, 100*exp)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evalFlags.strategy, "strategy", string(shell.StrategySmart), "random or smart")
	evaluateCmd.Flags().IntVar(&evalFlags.swaps, "swaps", 2, "swap count to evaluate")
}

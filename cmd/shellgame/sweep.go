package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/shellgame/internal/chart"
	"github.com/xtding233/shellgame/internal/config"
	"github.com/xtding233/shellgame/internal/progress"
	"github.com/xtding233/shellgame/internal/shell"
)

var sweepFlags struct {
	out      string
	expected bool
	summary  string
	watch    bool
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate both strategies over the swap range and plot them",
	Long: `Runs both strategies for every swap count from --min-swaps to --max-swaps
and saves the accuracy figure. The image format follows the --out extension.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.StringVarP(&sweepFlags.out, "out", "o", config.DefaultOutput, "figure path (.png, .svg, .pdf); missing parent directories are created")
	f.BoolVar(&sweepFlags.expected, "expected", false, "overlay closed-form expectations")
	f.StringVar(&sweepFlags.summary, "summary", "", "also write the accuracy series as YAML")
	f.BoolVarP(&sweepFlags.watch, "watch", "w", false, "re-run whenever the config files change")
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	src, err := newSettingsSource(cmd)
	if err != nil {
		return err
	}
	run := func(ctx context.Context) error { return sweepOnce(ctx, src) }
	if err := run(ctx); err != nil {
		return err
	}
	if !sweepFlags.watch {
		return nil
	}

	cw, err := newConfigWatch(src.loader, 300*time.Millisecond, logger)
	if err != nil {
		return err
	}
	cw.Start(ctx)
	logger.Info("watching config", zap.String("dir", src.loader.Paths().BaseDir))
	return cw.Loop(ctx, run)
}

func sweepOnce(ctx context.Context, src *settingsSource) error {
	s, err := src.Settings()
	if err != nil {
		return err
	}
	p := s.Params()
	logger.Info("sweep started",
		zap.Int("cups", p.Cups),
		zap.Int("min_swaps", p.MinSwaps),
		zap.Int("max_swaps", p.MaxSwaps),
		zap.Int("iterations", p.Iterations),
	)
	start := time.Now()
	res, err := shell.Sweep(ctx, p, s.SweepOptions(progress.NewLogReporter(logger)))
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	for _, name := range shell.Strategies {
		st := res.Stats(name)
		logger.Info("strategy summary",
			zap.String("strategy", string(name)),
			zap.Float64("mean", st.Mean),
			zap.Float64("min", st.Min),
			zap.Float64("max", st.Max),
			zap.Float64("max_deviation", st.MaxDeviation),
		)
	}

	if dir := filepath.Dir(s.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := chart.Render(res, s.Output, s.ChartOptions()); err != nil {
		return err
	}
	logger.Info("figure written", zap.String("path", s.Output), zap.Duration("elapsed", time.Since(start)))

	if sweepFlags.summary != "" {
		if err := config.WriteSummary(sweepFlags.summary, config.NewSummary(s, res)); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		logger.Info("summary written", zap.String("path", sweepFlags.summary))
	}
	return nil
}

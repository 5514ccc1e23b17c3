// resolve.go
package config

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"github.com/xtding233/shellgame/internal/chart"
	"github.com/xtding233/shellgame/internal/progress"
	"github.com/xtding233/shellgame/internal/shell"
)

const DefaultOutput = "plots/accuracyPlot.png"

// Resolve merges default → profile → overrides into Settings.
func (l *Loader) Resolve(profile string, o Overrides) (Settings, error) {
	raw, err := l.LoadMerged(profile)
	if err != nil {
		return Settings{}, err
	}
	return Apply(raw, o)
}

// Apply lays overrides over raw, validates, and fills defaults.
func Apply(raw RawConfig, o Overrides) (Settings, error) {
	raw.Game.Cups = pick(raw.Game.Cups, o.Cups)
	raw.Game.MinSwaps = pick(raw.Game.MinSwaps, o.MinSwaps)
	raw.Game.MaxSwaps = pick(raw.Game.MaxSwaps, o.MaxSwaps)
	raw.Run.Iterations = pick(raw.Run.Iterations, o.Iterations)
	raw.Run.Seed = pick(raw.Run.Seed, o.Seed)
	raw.Run.Workers = pick(raw.Run.Workers, o.Workers)
	if o.Output != nil || o.ShowExpected != nil {
		pc := PlotConfig{}
		if raw.Plot != nil {
			pc = *raw.Plot
		}
		if o.Output != nil {
			pc.Output = *o.Output
		}
		pc.ShowExpected = pick(pc.ShowExpected, o.ShowExpected)
		raw.Plot = &pc
	}

	if err := ValidateRaw(raw); err != nil {
		return Settings{}, err
	}

	d := shell.DefaultParams()
	s := Settings{
		Cups:       deref(raw.Game.Cups, d.Cups),
		MinSwaps:   deref(raw.Game.MinSwaps, d.MinSwaps),
		MaxSwaps:   deref(raw.Game.MaxSwaps, d.MaxSwaps),
		Iterations: deref(raw.Run.Iterations, d.Iterations),
		Seed:       raw.Run.Seed,
		Workers:    deref(raw.Run.Workers, 0),
		Output:     DefaultOutput,
		Title:      chart.DefaultTitle,
		WidthIn:    16,
		HeightIn:   9,
		Version:    raw.Version,
	}
	if pc := raw.Plot; pc != nil {
		if pc.Output != "" {
			s.Output = pc.Output
		}
		if pc.Title != "" {
			s.Title = pc.Title
		}
		s.WidthIn = deref(pc.WidthIn, s.WidthIn)
		s.HeightIn = deref(pc.HeightIn, s.HeightIn)
		s.ShowExpected = deref(pc.ShowExpected, false)
	}
	// defaults can still clash with a one-sided bound from the files
	if err := s.Params().Validate(); err != nil {
		return Settings{}, fmt.Errorf("resolve: %w", err)
	}
	return s, nil
}

// Params returns the simulator parameters.
func (s Settings) Params() shell.Params {
	return shell.Params{
		Cups:       s.Cups,
		MinSwaps:   s.MinSwaps,
		MaxSwaps:   s.MaxSwaps,
		Iterations: s.Iterations,
	}
}

// SweepOptions returns execution options for shell.Sweep. A nil reporter
// means progress.Nop.
func (s Settings) SweepOptions(rep shell.Reporter) shell.SweepOptions {
	if rep == nil {
		rep = progress.Nop{}
	}
	return shell.SweepOptions{Seed: s.Seed, Workers: s.Workers, Reporter: rep}
}

// ChartOptions returns layout options for chart.Render.
func (s Settings) ChartOptions() chart.Options {
	return chart.Options{
		Title:        s.Title,
		Width:        vg.Length(s.WidthIn) * vg.Inch,
		Height:       vg.Length(s.HeightIn) * vg.Inch,
		ShowExpected: s.ShowExpected,
	}
}

func deref[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// Package chart draws sweep results with gonum/plot.
package chart

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/xtding233/shellgame/internal/shell"
)

const DefaultTitle = "Accuracies of Smart Strategy vs Random Guessing Strategy"

// Options controls figure layout. Zero values fall back to a 16x9 inch figure
// with the default title.
type Options struct {
	Title        string
	Width        vg.Length
	Height       vg.Length
	ShowExpected bool // overlay dashed closed-form curves
}

var legendNames = map[shell.StrategyName]string{
	shell.StrategyRandom: "Random Guessing Strategy",
	shell.StrategySmart:  "Smart Guessing Strategy",
}

// Build lays out the figure without writing it.
func Build(res shell.SweepResult, opts Options) (*plot.Plot, error) {
	if len(res.Swaps) == 0 {
		return nil, fmt.Errorf("chart: empty sweep")
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.X.Label.Text = "Number of Swaps"
	p.Y.Label.Text = "Guessing Accuracy Percentage"
	p.X.Label.TextStyle.Font.Size = vg.Points(15)
	p.Y.Label.TextStyle.Font.Size = vg.Points(15)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(13)
	p.Add(plotter.NewGrid())

	for i, s := range shell.Strategies {
		line, points, err := plotter.NewLinePoints(xys(res.Swaps, res.Series(s)))
		if err != nil {
			return nil, fmt.Errorf("chart: %s series: %w", s, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(2)
		points.GlyphStyle.Color = plotutil.Color(i)
		points.GlyphStyle.Shape = plotutil.Shape(0)
		p.Add(line, points)
		p.Legend.Add(legendNames[s], line, points)

		if opts.ShowExpected && len(res.Expected[s]) == len(res.Swaps) {
			exp, err := plotter.NewLine(xys(res.Swaps, res.Expected[s]))
			if err != nil {
				return nil, fmt.Errorf("chart: %s expected: %w", s, err)
			}
			exp.LineStyle.Color = plotutil.Color(i)
			exp.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
			p.Add(exp)
			p.Legend.Add(legendNames[s]+" (expected)", exp)
		}
	}

	p.X.Tick.Marker = plot.ConstantTicks(swapTicks(res.Swaps))
	lo, hi := yBounds(res)
	p.Y.Min, p.Y.Max = lo, hi
	p.Y.Tick.Marker = plot.ConstantTicks(percentTicks(lo, hi))
	p.X.Min = float64(res.Swaps[0]) - 0.5
	p.X.Max = float64(res.Swaps[len(res.Swaps)-1]) + 0.5
	return p, nil
}

// Render draws res and saves it to path; the format follows the extension
// (.png, .svg, .pdf, ...). Write failures are returned as is.
func Render(res shell.SweepResult, path string, opts Options) error {
	p, err := Build(res, opts)
	if err != nil {
		return err
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 16*vg.Inch, 9*vg.Inch
	}
	return p.Save(w, h, path)
}

func xys(xs []int, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = float64(xs[i])
		if i < len(ys) {
			pts[i].Y = ys[i]
		}
	}
	return pts
}

func swapTicks(swaps []int) []plot.Tick {
	ticks := make([]plot.Tick, len(swaps))
	for i, k := range swaps {
		ticks[i] = plot.Tick{Value: float64(k), Label: strconv.Itoa(k)}
	}
	return ticks
}

// yBounds spans 30%..55% and widens to whole percents when data falls outside.
func yBounds(res shell.SweepResult) (float64, float64) {
	lo, hi := 0.30, 0.55
	for _, s := range shell.Strategies {
		for _, v := range res.Series(s) {
			lo = math.Min(lo, math.Floor(v*100)/100)
			hi = math.Max(hi, math.Ceil(v*100)/100)
		}
	}
	return lo, hi
}

// percentTicks labels every whole percent between lo and hi.
func percentTicks(lo, hi float64) []plot.Tick {
	var ticks []plot.Tick
	for pct := int(math.Round(lo * 100)); pct <= int(math.Round(hi*100)); pct++ {
		ticks = append(ticks, plot.Tick{Value: float64(pct) / 100, Label: strconv.Itoa(pct)})
	}
	return ticks
}

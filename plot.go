package bitstab

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Point is one (n, value) pair of a plotted series.
type Point struct {
	N     int
	Value float64
}

// PlotOptions controls RenderLogPlot.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	Height int // Rows of the chart body
}

// DefaultPlotOptions matches the labels of the sequence extension demo.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Title:  "Cn(z) vs n (log scale)",
		XLabel: "n",
		YLabel: "Cn(z)",
		Height: 12,
	}
}

// PointsFromSamples converts a cascade scan into plot points.
func PointsFromSamples(samples []Sample) []Point {
	points := make([]Point, len(samples))
	for i, s := range samples {
		points[i] = Point{N: s.N, Value: s.Value}
	}
	return points
}

// RenderLogPlot draws log10(value) against n as a terminal line chart, one
// column per point. Non-positive and non-finite values cannot sit on a log
// axis; they are left out of the line and listed as off scale.
func RenderLogPlot(w io.Writer, points []Point, opts PlotOptions) error {
	if opts.Height < 1 {
		opts.Height = DefaultPlotOptions().Height
	}

	series := make([]float64, 0, len(points))
	var plotted, off []Point
	for _, p := range points {
		if !plottable(p.Value) {
			off = append(off, p)
			continue
		}
		series = append(series, math.Log10(p.Value))
		plotted = append(plotted, p)
	}

	var b strings.Builder
	if opts.Title != "" {
		fmt.Fprintln(&b, opts.Title)
	}

	if len(series) == 0 {
		fmt.Fprintf(&b, "(no %s values on a log scale)\n", opts.YLabel)
	} else {
		caption := fmt.Sprintf("x: %s = %d..%d   y: log10 %s",
			opts.XLabel, plotted[0].N, plotted[len(plotted)-1].N, opts.YLabel)
		fmt.Fprintln(&b, asciigraph.Plot(series,
			asciigraph.Height(opts.Height),
			asciigraph.Precision(2),
			asciigraph.Caption(caption)))
	}

	for _, p := range off {
		fmt.Fprintf(&b, "%s=%d: off scale (%v)\n", opts.XLabel, p.N, p.Value)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func plottable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

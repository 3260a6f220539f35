// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/toeirei/rankscope/internal/logging"
	"github.com/toeirei/rankscope/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure sizes of the two charts.
var (
	lineWidth, lineHeight = 12 * vg.Inch, 8 * vg.Inch
	barsWidth, barsHeight = 20 * vg.Inch, 12 * vg.Inch
)

var (
	seriesColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	barColor    = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("chart has no data")

// ImageRenderer writes charts as PNG files into Dir. It is used when no
// terminal is available for interactive windows.
type ImageRenderer struct {
	Dir string
}

// Path returns the file a chart with the given name is written to.
func (r ImageRenderer) Path(name string) string {
	dir := r.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name+".png")
}

// RenderLine draws l with markers at every observation.
func (r ImageRenderer) RenderLine(l Line) error {
	if len(l.Points) == 0 {
		return ErrNoData
	}
	p := newPlot(l.Title, l.XLabel, l.YLabel)

	xys := make(plotter.XYs, len(l.Points))
	for i, pt := range l.Points {
		xys[i].X = float64(pt.X.Unix())
		xys[i].Y = pt.Y
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("could not build line: %w", err)
	}
	line.Color = seriesColor
	points.Shape = draw.CircleGlyph{}
	points.Color = seriesColor
	p.Add(line, points)

	p.X.Tick.Marker = plot.TimeTicks{Format: model.DateLayout}
	if l.InvertY {
		p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	}
	return r.save(p, lineWidth, lineHeight, l.Name)
}

// RenderBars draws one bar per category with its annotation above it.
func (r ImageRenderer) RenderBars(c Bars) error {
	if len(c.Bars) == 0 {
		return ErrNoData
	}
	p := newPlot(c.Title, c.XLabel, c.YLabel)

	values := make(plotter.Values, len(c.Bars))
	names := make([]string, len(c.Bars))
	notes := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(c.Bars)),
		Labels: make([]string, len(c.Bars)),
	}
	for i, bar := range c.Bars {
		values[i] = bar.Value
		names[i] = bar.Label
		notes.XYs[i] = plotter.XY{X: float64(i), Y: bar.Value}
		notes.Labels[i] = bar.Annotation
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("could not build bars: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	labels, err := plotter.NewLabels(notes)
	if err != nil {
		return fmt.Errorf("could not build annotations: %w", err)
	}
	p.Add(labels)
	p.NominalX(names...)
	return r.save(p, barsWidth, barsHeight, c.Name)
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func (r ImageRenderer) save(p *plot.Plot, w, h vg.Length, name string) error {
	path := r.Path(name)
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("could not save chart: %w", err)
	}
	logging.Infof("chart written to %s", path)
	return nil
}

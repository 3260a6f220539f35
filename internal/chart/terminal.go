// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package chart

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/toeirei/rankscope/internal/model"
	"gonum.org/v1/plot"
)

// Minimum canvas size; smaller windows are drawn at this size and clipped by
// the terminal.
const (
	MinWidth  = 24
	MinHeight = 10
)

// Runes used on the canvas.
const (
	runeMarker = '●'
	runeLine   = '·'
	runeGrid   = '┈'
	runeBar    = '█'
)

const (
	cellEmpty uint8 = iota
	cellGrid
	cellAxis
	cellLine
	cellMarker
	cellBar
	cellNote
)

// canvas is a character grid where every cell carries a kind used for
// styling.
type canvas struct {
	w, h  int
	runes [][]rune
	kinds [][]uint8
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), kinds: make([][]uint8, h)}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.kinds[y] = make([]uint8, w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, kind uint8) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = kind
}

func (c *canvas) kind(x, y int) uint8 {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return cellEmpty
	}
	return c.kinds[y][x]
}

func (c *canvas) text(x, y int, s string, kind uint8) {
	for _, r := range s {
		c.set(x, y, r, kind)
		x++
	}
}

// segment connects two cells without overwriting markers.
func (c *canvas) segment(x0, y0, x1, y1 int) {
	steps := max(abs(x1-x0), abs(y1-y0))
	for s := 1; s < steps; s++ {
		f := float64(s) / float64(steps)
		x := x0 + int(math.Round(f*float64(x1-x0)))
		y := y0 + int(math.Round(f*float64(y1-y0)))
		if c.kind(x, y) != cellMarker {
			c.set(x, y, runeLine, cellLine)
		}
	}
}

// String renders the canvas, styling runs of equal kind in one call.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.kinds[y][x] == c.kinds[y][start] {
				continue
			}
			b.WriteString(cellStyles[c.kinds[y][start]].Render(string(c.runes[y][start:x])))
			start = x
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// majorTicks returns the labelled ticks gonum/plot would place on [lo, hi].
func majorTicks(lo, hi float64) []plot.Tick {
	var out []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.Label != "" && t.Value >= lo && t.Value <= hi {
			out = append(out, t)
		}
	}
	return out
}

func tickLabelWidth(ticks []plot.Tick, floor int) int {
	w := floor
	for _, t := range ticks {
		w = max(w, utf8.RuneCountInString(t.Label))
	}
	return w
}

// RenderLine draws a line chart with point markers into a width x height
// character block.
func RenderLine(l Line, width, height int) string {
	width, height = max(width, MinWidth), max(height, MinHeight)

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncate(l.Title, width)))
	b.WriteByte('\n')
	if len(l.Points) == 0 {
		b.WriteString(noDataStyle.Render("no data"))
		return b.String()
	}

	lo, hi := l.Points[0].Y, l.Points[0].Y
	t0, t1 := l.Points[0].X, l.Points[0].X
	for _, p := range l.Points[1:] {
		lo, hi = math.Min(lo, p.Y), math.Max(hi, p.Y)
		if p.X.Before(t0) {
			t0 = p.X
		}
		if p.X.After(t1) {
			t1 = p.X
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	ticks := majorTicks(lo, hi)
	labelW := tickLabelWidth(ticks, 1)
	plotH := height - 5
	plotW := width - labelW - 1
	left := labelW + 1

	cv := newCanvas(width, plotH+2)
	rowOf := func(v float64) int {
		f := (hi - v) / (hi - lo)
		if l.InvertY {
			f = (v - lo) / (hi - lo)
		}
		return int(math.Round(f * float64(plotH-1)))
	}
	colOf := func(t time.Time) int {
		if !t1.After(t0) {
			return left + (plotW-1)/2
		}
		f := float64(t.Sub(t0)) / float64(t1.Sub(t0))
		return left + int(math.Round(f*float64(plotW-1)))
	}

	drawYAxis(cv, ticks, rowOf, labelW, plotH)

	for i := 1; i < len(l.Points); i++ {
		p, q := l.Points[i-1], l.Points[i]
		cv.segment(colOf(p.X), rowOf(p.Y), colOf(q.X), rowOf(q.Y))
	}
	for _, p := range l.Points {
		cv.set(colOf(p.X), rowOf(p.Y), runeMarker, cellMarker)
	}

	first, last := model.FormatDate(t0), model.FormatDate(t1)
	cv.text(left, plotH+1, first, cellAxis)
	if t1.After(t0) {
		if x := width - utf8.RuneCountInString(last); x > left+utf8.RuneCountInString(first) {
			cv.text(x, plotH+1, last, cellAxis)
		}
	}

	b.WriteString(labelStyle.Render(truncate(l.YLabel, width)))
	b.WriteByte('\n')
	b.WriteString(cv.String())
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render(center(l.XLabel, width)))
	return b.String()
}

// RenderBars draws a vertical bar chart with the annotation of each bar on
// top of it and its label below.
func RenderBars(c Bars, width, height int) string {
	width, height = max(width, MinWidth), max(height, MinHeight)

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncate(c.Title, width)))
	b.WriteByte('\n')
	if len(c.Bars) == 0 {
		b.WriteString(noDataStyle.Render("no data"))
		return b.String()
	}

	hi := 0.0
	for _, bar := range c.Bars {
		hi = math.Max(hi, bar.Value)
	}
	if hi <= 0 {
		hi = 1
	}

	ticks := majorTicks(0, hi)
	labelW := tickLabelWidth(ticks, 1)
	plotH := height - 5
	plotW := width - labelW - 1
	left := labelW + 1

	cv := newCanvas(width, plotH+2)
	// Row 0 is kept free for the annotation of the tallest bar.
	rowOf := func(v float64) int {
		return plotH - 1 - int(math.Round(v/hi*float64(plotH-2)))
	}

	drawYAxis(cv, ticks, rowOf, labelW, plotH)

	slot := max(plotW/len(c.Bars), 2)
	barW := min(slot-1, 8)
	for i, bar := range c.Bars {
		x0 := left + i*slot
		top := rowOf(bar.Value)
		if bar.Value > 0 && top > plotH-2 {
			top = plotH - 2
		}
		if bar.Value > 0 {
			bx := x0 + (slot-barW)/2
			for y := top; y < plotH; y++ {
				for x := bx; x < bx+barW; x++ {
					cv.set(x, y, runeBar, cellBar)
				}
			}
		}
		note := truncate(bar.Annotation, slot)
		cv.text(x0+(slot-utf8.RuneCountInString(note))/2, top-1, note, cellNote)
		label := truncate(bar.Label, slot)
		cv.text(x0+(slot-utf8.RuneCountInString(label))/2, plotH+1, label, cellAxis)
	}

	b.WriteString(labelStyle.Render(truncate(c.YLabel, width)))
	b.WriteByte('\n')
	b.WriteString(cv.String())
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render(center(c.XLabel, width)))
	return b.String()
}

// drawYAxis draws tick labels, grid lines and both axes.
func drawYAxis(cv *canvas, ticks []plot.Tick, rowOf func(float64) int, labelW, plotH int) {
	for _, t := range ticks {
		y := rowOf(t.Value)
		pad := labelW - utf8.RuneCountInString(t.Label)
		cv.text(pad, y, t.Label, cellAxis)
		for x := labelW + 1; x < cv.w; x++ {
			cv.set(x, y, runeGrid, cellGrid)
		}
	}
	for y := 0; y < plotH; y++ {
		cv.set(labelW, y, '│', cellAxis)
	}
	cv.set(labelW, plotH, '└', cellAxis)
	for x := labelW + 1; x < cv.w; x++ {
		cv.set(x, plotH, '─', cellAxis)
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}

func center(s string, width int) string {
	s = truncate(s, width)
	pad := (width - utf8.RuneCountInString(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

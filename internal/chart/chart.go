// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package chart holds renderer-independent chart descriptions and the two
// renderers that draw them: a character canvas for terminal windows and
// gonum/plot images for headless runs.
package chart

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/toeirei/rankscope/internal/model"
)

// Point is a single observation of a line chart.
type Point struct {
	X time.Time
	Y float64
}

// Line is a time series chart.
type Line struct {
	Name   string // file-safe identifier, e.g. "keyword_rank"
	Title  string
	XLabel string
	YLabel string
	Points []Point
	// InvertY draws the smallest value at the top, which suits ranks.
	InvertY bool
}

// Bar is one bar of a bar chart.
type Bar struct {
	Label      string
	Value      float64
	Annotation string
}

// Bars is a bar chart with one bar per category.
type Bars struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
}

// Text renders the chart data as a tab separated table.
func (l Line) Text() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", l.XLabel, l.YLabel)
	for _, p := range l.Points {
		fmt.Fprintf(w, "%s\t%s\n", model.FormatDate(p.X), formatValue(p.Y))
	}
	_ = w.Flush()
	return b.String()
}

// Text renders the chart data as a tab separated table.
func (c Bars) Text() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", c.XLabel, c.YLabel, "annotation")
	for _, bar := range c.Bars {
		fmt.Fprintf(w, "%s\t%s\t%s\n", bar.Label, formatValue(bar.Value), bar.Annotation)
	}
	_ = w.Flush()
	return b.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

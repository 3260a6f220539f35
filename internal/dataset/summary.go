// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package dataset

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HeadRows is the number of rows shown by Summary.Head.
const HeadRows = 5

// ColumnInfo describes one column of the frame.
type ColumnInfo struct {
	Name    string
	Type    string // gota dtype: int, float, string or bool
	NonNull int
}

// ColumnStats holds descriptive statistics of a numeric column. Values are
// NaN when the column has no non-null cells; Std is NaN for a single value.
type ColumnStats struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Summary is the diagnostic view of a table: a preview, column info and
// numeric statistics.
type Summary struct {
	Rows    int
	Columns []ColumnInfo
	Stats   []ColumnStats
	Header  []string
	Head    [][]string
}

// Summarize computes the diagnostics for every column of the table.
func (t *Table) Summarize() Summary {
	df := t.frame
	names := df.Names()
	types := df.Types()

	s := Summary{
		Rows:   df.Nrow(),
		Header: names,
	}

	for i, name := range names {
		col := df.Col(name)
		info := ColumnInfo{Name: name, Type: string(types[i])}
		values := make([]float64, 0, col.Len())
		for j := 0; j < col.Len(); j++ {
			e := col.Elem(j)
			if e.IsNA() {
				continue
			}
			info.NonNull++
			if isNumeric(types[i]) {
				values = append(values, e.Float())
			}
		}
		s.Columns = append(s.Columns, info)
		if isNumeric(types[i]) {
			s.Stats = append(s.Stats, describe(name, values))
		}
	}

	n := min(HeadRows, df.Nrow())
	for j := 0; j < n; j++ {
		row := make([]string, len(names))
		for i, name := range names {
			row[i] = df.Col(name).Elem(j).String()
		}
		s.Head = append(s.Head, row)
	}
	return s
}

func isNumeric(t series.Type) bool {
	return t == series.Int || t == series.Float
}

// describe sorts values in place.
func describe(name string, values []float64) ColumnStats {
	cs := ColumnStats{Name: name, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		cs.Mean, cs.Std, cs.Min, cs.Q25, cs.Q50, cs.Q75, cs.Max = nan, nan, nan, nan, nan, nan, nan
		return cs
	}
	sort.Float64s(values)
	cs.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		cs.Std = stat.StdDev(values, nil)
	} else {
		cs.Std = math.NaN()
	}
	cs.Min = floats.Min(values)
	cs.Max = floats.Max(values)
	cs.Q25 = quantile(values, 0.25)
	cs.Q50 = quantile(values, 0.5)
	cs.Q75 = quantile(values, 0.75)
	return cs
}

// quantile interpolates linearly between the closest ranks at (n-1)p of the
// sorted values.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo, hi := int(math.Floor(h)), int(math.Ceil(h))
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/toeirei/rankscope/internal/model"
)

func TestSummarize_MatchesRawFile(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV), ';')
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	s := tbl.Summarize()

	// Independent derivation from the raw text.
	lines := strings.Split(strings.TrimSpace(sampleCSV), "\n")
	if s.Rows != len(lines)-1 {
		t.Fatalf("expected %d rows, got %d", len(lines)-1, s.Rows)
	}

	wantTypes := map[string]string{
		model.ColKeywordID:    "int",
		model.ColSearchEngine: "int",
		model.ColDate:         "string",
		model.ColKeywordRank:  "int",
		model.ColSearches:     "int",
	}
	if len(s.Columns) != len(wantTypes) {
		t.Fatalf("expected %d columns, got %d", len(wantTypes), len(s.Columns))
	}
	for _, c := range s.Columns {
		if c.Type != wantTypes[c.Name] {
			t.Errorf("column %s: expected type %s, got %s", c.Name, wantTypes[c.Name], c.Type)
		}
		if c.NonNull != s.Rows {
			t.Errorf("column %s: expected %d non-null, got %d", c.Name, s.Rows, c.NonNull)
		}
	}

	// Only numeric columns are described.
	if len(s.Stats) != 4 {
		t.Fatalf("expected 4 numeric columns, got %d", len(s.Stats))
	}
	var searches ColumnStats
	for _, st := range s.Stats {
		if st.Name == model.ColSearches {
			searches = st
		}
	}
	if searches.Count != 4 {
		t.Fatalf("expected count 4, got %d", searches.Count)
	}
	if searches.Min != 40 || searches.Max != 900 {
		t.Fatalf("unexpected min/max: %v/%v", searches.Min, searches.Max)
	}
	if math.Abs(searches.Mean-297.5) > 1e-9 {
		t.Fatalf("unexpected mean: %v", searches.Mean)
	}
	if searches.Std <= 0 {
		t.Fatalf("expected positive std, got %v", searches.Std)
	}
	// Sorted searches are 40, 100, 150, 900.
	if searches.Q25 != 85 || searches.Q50 != 125 || searches.Q75 != 337.5 {
		t.Fatalf("unexpected quartiles: %v/%v/%v", searches.Q25, searches.Q50, searches.Q75)
	}
}

func TestSummarize_Head(t *testing.T) {
	var b strings.Builder
	b.WriteString("keyword_id;search_engine;date;keyword_rank;searches\n")
	for i := 0; i < 8; i++ {
		b.WriteString("1;1;2023-01-01;1;10\n")
	}
	tbl, err := Read(strings.NewReader(b.String()), ';')
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	s := tbl.Summarize()
	if len(s.Head) != HeadRows {
		t.Fatalf("expected %d head rows, got %d", HeadRows, len(s.Head))
	}
	if strings.Join(s.Head[0], ";") != "1;1;2023-01-01;1;10" {
		t.Fatalf("unexpected head row: %v", s.Head[0])
	}
}

func TestDescribe_Quartiles(t *testing.T) {
	cases := []struct {
		name          string
		values        []float64
		q25, q50, q75 float64
	}{
		{"even length", []float64{4, 1, 3, 2}, 1.75, 2.5, 3.25},
		{"odd length", []float64{10, 20, 30, 40, 50}, 20, 30, 40},
		{"single value", []float64{7}, 7, 7, 7},
		{"uneven gaps", []float64{1, 2, 10, 100}, 1.75, 6, 32.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cs := describe("x", c.values)
			if cs.Q25 != c.q25 || cs.Q50 != c.q50 || cs.Q75 != c.q75 {
				t.Fatalf("expected quartiles %v/%v/%v, got %v/%v/%v", c.q25, c.q50, c.q75, cs.Q25, cs.Q50, cs.Q75)
			}
		})
	}
}

func TestDescribe_SingleValue(t *testing.T) {
	cs := describe("x", []float64{7})
	if cs.Count != 1 || cs.Min != 7 || cs.Max != 7 || cs.Mean != 7 {
		t.Fatalf("unexpected stats: %+v", cs)
	}
	if !math.IsNaN(cs.Std) {
		t.Fatalf("expected NaN std for a single value, got %v", cs.Std)
	}

	empty := describe("y", nil)
	if empty.Count != 0 || !math.IsNaN(empty.Mean) {
		t.Fatalf("unexpected stats for empty column: %+v", empty)
	}
}

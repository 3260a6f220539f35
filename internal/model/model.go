// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures shared by the loader, the
// analyses and the database layer.
package model // import "github.com/toeirei/rankscope/internal/model"

import (
	"fmt"
	"time"
)

// Column names of a rankings dataset.
const (
	ColKeywordID    = "keyword_id"
	ColSearchEngine = "search_engine"
	ColDate         = "date"
	ColKeywordRank  = "keyword_rank"
	ColSearches     = "searches"
)

// RequiredColumns lists the columns every rankings dataset must provide, in
// their canonical order.
var RequiredColumns = []string{ColKeywordID, ColSearchEngine, ColDate, ColKeywordRank, ColSearches}

// DateLayout is the canonical layout used when a date has no time component.
const DateLayout = "2006-01-02"

// Ranking is a single observation of a keyword's position on a search engine.
type Ranking struct {
	KeywordID    int
	SearchEngine int
	Date         time.Time
	KeywordRank  int // 1 is the best position
	Searches     int
}

// String returns a compact representation, e.g. "8341@2 2023-01-01 #3 (100)".
func (r Ranking) String() string {
	return fmt.Sprintf("%d@%d %s #%d (%d)", r.KeywordID, r.SearchEngine, FormatDate(r.Date), r.KeywordRank, r.Searches)
}

// FormatDate renders t as a plain date when it has no time of day and as
// RFC 3339 otherwise.
func FormatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(time.RFC3339)
}

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{DateLayout, "2006-01-02 15:04:05", time.RFC3339}

// ParseDate parses a date cell using the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, firstErr)
}

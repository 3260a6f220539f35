// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/toeirei/rankscope/internal/model"
	"github.com/toeirei/rankscope/util/slicest"
)

// ErrNoMatchingRows is returned when a keyword/engine pair has no rows.
var ErrNoMatchingRows = errors.New("no matching rows")

// Series holds the observations of one keyword on one search engine.
type Series struct {
	KeywordID    int
	SearchEngine int
	Rows         []model.Ranking
}

// Ranks returns the rank values in date order.
func (s Series) Ranks() []int {
	return slicest.Map(s.Rows, func(r model.Ranking) int { return r.KeywordRank })
}

// RankSeries returns the rows matching both keywordID and searchEngine,
// ordered by date. Rows sharing a date keep their input order.
func RankSeries(rows []model.Ranking, keywordID, searchEngine int) (Series, error) {
	s := Series{KeywordID: keywordID, SearchEngine: searchEngine}
	s.Rows = slicest.Filter(rows, func(r model.Ranking) bool {
		return r.KeywordID == keywordID && r.SearchEngine == searchEngine
	})
	if len(s.Rows) == 0 {
		return s, fmt.Errorf("%w for keyword_id %d and search_engine %d", ErrNoMatchingRows, keywordID, searchEngine)
	}
	slices.SortStableFunc(s.Rows, func(a, b model.Ranking) int {
		return a.Date.Compare(b.Date)
	})
	return s, nil
}

// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"github.com/toeirei/rankscope/internal/model"
	"github.com/toeirei/rankscope/util/slicest"
)

// EngineTop is the keyword with the most searches on one search engine.
type EngineTop struct {
	SearchEngine int
	KeywordID    int
	Searches     int // summed over all dates
}

// keywordSums accumulates searches per keyword, remembering the order in
// which keywords were first seen.
type keywordSums struct {
	order []int
	sums  map[int]int
}

func (k *keywordSums) add(keywordID, searches int) {
	if _, ok := k.sums[keywordID]; !ok {
		k.order = append(k.order, keywordID)
	}
	k.sums[keywordID] += searches
}

// top returns the keyword with the largest sum; the first-seen keyword wins
// ties.
func (k *keywordSums) top() (keywordID, searches int) {
	for i, id := range k.order {
		if s := k.sums[id]; i == 0 || s > searches {
			keywordID, searches = id, s
		}
	}
	return keywordID, searches
}

// TopKeywords sums searches per keyword for every search engine and returns
// the best keyword of each engine. Engines appear in the order they are
// first seen in rows.
func TopKeywords(rows []model.Ranking) []EngineTop {
	var engines []int
	groups := make(map[int]*keywordSums)
	for _, r := range rows {
		g, ok := groups[r.SearchEngine]
		if !ok {
			g = &keywordSums{sums: make(map[int]int)}
			groups[r.SearchEngine] = g
			engines = append(engines, r.SearchEngine)
		}
		g.add(r.KeywordID, r.Searches)
	}

	out := make([]EngineTop, 0, len(engines))
	for _, e := range engines {
		id, sum := groups[e].top()
		out = append(out, EngineTop{SearchEngine: e, KeywordID: id, Searches: sum})
	}
	return out
}

// TotalSearches sums the searches of one keyword on one engine.
func TotalSearches(rows []model.Ranking, searchEngine, keywordID int) int {
	return slicest.ReduceD(rows, 0, func(r model.Ranking, total int) int {
		if r.SearchEngine == searchEngine && r.KeywordID == keywordID {
			total += r.Searches
		}
		return total
	})
}

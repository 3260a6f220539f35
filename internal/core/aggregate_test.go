// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"testing"

	"github.com/toeirei/rankscope/internal/model"
)

func TestTopKeywords_PicksMaxSumPerEngine(t *testing.T) {
	rows := sampleRows()
	tops := TopKeywords(rows)

	want := []EngineTop{
		{SearchEngine: 2, KeywordID: 1200, Searches: 500},
		{SearchEngine: 5, KeywordID: 77, Searches: 60},
	}
	if len(tops) != len(want) {
		t.Fatalf("expected %d engines, got %d: %+v", len(want), len(tops), tops)
	}
	for i := range want {
		if tops[i] != want[i] {
			t.Fatalf("engine %d: got %+v want %+v", i, tops[i], want[i])
		}
	}
}

func TestTopKeywords_TotalsMatchRawRows(t *testing.T) {
	rows := sampleRows()
	for _, top := range TopKeywords(rows) {
		if got := TotalSearches(rows, top.SearchEngine, top.KeywordID); got != top.Searches {
			t.Fatalf("engine %d keyword %d: reported %d, re-derived %d", top.SearchEngine, top.KeywordID, top.Searches, got)
		}
		// No other keyword on the engine may exceed the reported total.
		for _, r := range rows {
			if r.SearchEngine != top.SearchEngine {
				continue
			}
			if other := TotalSearches(rows, r.SearchEngine, r.KeywordID); other > top.Searches {
				t.Fatalf("keyword %d has %d searches, more than reported top %d", r.KeywordID, other, top.Searches)
			}
		}
	}
}

func TestTopKeywords_TieGoesToFirstEncountered(t *testing.T) {
	rows := []model.Ranking{
		{KeywordID: 9, SearchEngine: 1, Searches: 50},
		{KeywordID: 3, SearchEngine: 1, Searches: 100},
		{KeywordID: 9, SearchEngine: 1, Searches: 50},
	}
	tops := TopKeywords(rows)
	if len(tops) != 1 || tops[0].KeywordID != 9 || tops[0].Searches != 100 {
		t.Fatalf("expected keyword 9 to win the tie, got %+v", tops)
	}
}

func TestTopKeywords_EngineOrderFollowsInput(t *testing.T) {
	rows := []model.Ranking{
		{KeywordID: 1, SearchEngine: 7, Searches: 1},
		{KeywordID: 1, SearchEngine: 3, Searches: 1},
		{KeywordID: 1, SearchEngine: 7, Searches: 1},
		{KeywordID: 1, SearchEngine: 0, Searches: 1},
	}
	tops := TopKeywords(rows)
	order := []int{tops[0].SearchEngine, tops[1].SearchEngine, tops[2].SearchEngine}
	if order[0] != 7 || order[1] != 3 || order[2] != 0 {
		t.Fatalf("unexpected engine order %v", order)
	}
}

func TestTopKeywords_Empty(t *testing.T) {
	if tops := TopKeywords(nil); len(tops) != 0 {
		t.Fatalf("expected no engines, got %+v", tops)
	}
}

// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"strconv"

	"github.com/toeirei/rankscope/internal/chart"
	"github.com/toeirei/rankscope/internal/model"
	"github.com/toeirei/rankscope/util/slicest"
)

// Chart names, used as file names by image renderers.
const (
	RankChartName = "keyword_rank"
	TopChartName  = "top_keywords"
)

// RankChart describes the rank-over-time line chart of s.
func RankChart(s Series) chart.Line {
	return chart.Line{
		Name:   RankChartName,
		Title:  fmt.Sprintf("keyword_rank vs dates for keyword_id:%d and search_engine:%d", s.KeywordID, s.SearchEngine),
		XLabel: "dates",
		YLabel: model.ColKeywordRank,
		Points: slicest.Map(s.Rows, func(r model.Ranking) chart.Point {
			return chart.Point{X: r.Date, Y: float64(r.KeywordRank)}
		}),
		InvertY: true,
	}
}

// TopChart describes the bar chart of the best keyword per engine. Bars are
// labelled with the engine and annotated with the keyword.
func TopChart(tops []EngineTop) chart.Bars {
	return chart.Bars{
		Name:   TopChartName,
		Title:  "Number of searches vs search_engine for the top-ranked keyword_id",
		XLabel: "search_engine number",
		YLabel: "Number of searches",
		Bars: slicest.Map(tops, func(t EngineTop) chart.Bar {
			return chart.Bar{
				Label:      strconv.Itoa(t.SearchEngine),
				Value:      float64(t.Searches),
				Annotation: strconv.Itoa(t.KeywordID),
			}
		}),
	}
}

// PlotRank selects the series of keywordID on searchEngine and renders it.
func PlotRank(r Renderer, rows []model.Ranking, keywordID, searchEngine int) error {
	s, err := RankSeries(rows, keywordID, searchEngine)
	if err != nil {
		return err
	}
	return r.RenderLine(RankChart(s))
}

// PlotTop aggregates the best keyword per engine and renders it.
func PlotTop(r Renderer, rows []model.Ranking) ([]EngineTop, error) {
	tops := TopKeywords(rows)
	if len(tops) == 0 {
		return nil, ErrNoMatchingRows
	}
	return tops, r.RenderBars(TopChart(tops))
}

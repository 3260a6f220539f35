// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/rankscope/internal/dataset"
)

// Source loads the dataset stored in a database.
type Source struct {
	Store Store
}

var _ dataset.Source = Source{}

func (s Source) Load(ctx context.Context) (*dataset.Table, error) {
	rows, err := s.Store.LoadRankings(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("keyword_rankings: %w", dataset.ErrEmptyDataset)
	}
	dbLogf("db: loaded %d rankings", len(rows))
	return dataset.FromRankings(rows)
}

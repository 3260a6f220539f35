// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/toeirei/rankscope/internal/model"
	"github.com/uptrace/bun"
)

// importBatchSize bounds the rows per INSERT statement so bind parameters
// stay below every backend's limit.
const importBatchSize = 500

// Store defines the database operations on ranking datasets.
type Store interface {
	// ImportRankings inserts rows in one transaction and returns how many
	// were written. With replace set the table is emptied first.
	ImportRankings(ctx context.Context, rows []model.Ranking, replace bool) (int, error)
	// LoadRankings returns all rows in insertion order.
	LoadRankings(ctx context.Context) ([]model.Ranking, error)
	CountRankings(ctx context.Context) (int, error)
	Close() error
}

// RankingModel maps the keyword_rankings table.
type RankingModel struct {
	bun.BaseModel `bun:"table:keyword_rankings"`
	ID            int64     `bun:"id,pk,autoincrement"`
	KeywordID     int       `bun:"keyword_id"`
	SearchEngine  int       `bun:"search_engine"`
	RankedOn      time.Time `bun:"ranked_on"`
	KeywordRank   int       `bun:"keyword_rank"`
	Searches      int       `bun:"searches"`
}

func rankingToModel(r model.Ranking) RankingModel {
	return RankingModel{
		KeywordID:    r.KeywordID,
		SearchEngine: r.SearchEngine,
		RankedOn:     r.Date.UTC(),
		KeywordRank:  r.KeywordRank,
		Searches:     r.Searches,
	}
}

func rankingModelToModel(m RankingModel) model.Ranking {
	return model.Ranking{
		KeywordID:    m.KeywordID,
		SearchEngine: m.SearchEngine,
		Date:         m.RankedOn.UTC(),
		KeywordRank:  m.KeywordRank,
		Searches:     m.Searches,
	}
}

// BunStore implements Store for every supported dialect.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

// Type returns the database type the store was opened with.
func (s *BunStore) Type() string { return s.dbType }

func (s *BunStore) ImportRankings(ctx context.Context, rows []model.Ranking, replace bool) (int, error) {
	start := time.Now()
	written := 0
	err := WithTx(ctx, s.bun, func(ctx context.Context, tx bun.Tx) error {
		if replace {
			res, err := ExecRaw(ctx, tx, "DELETE FROM keyword_rankings")
			if err != nil {
				return fmt.Errorf("clear keyword_rankings: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil {
				dbLogf("db: removed %d existing rankings", n)
			}
		}
		for lo := 0; lo < len(rows); lo += importBatchSize {
			hi := min(lo+importBatchSize, len(rows))
			batch := make([]RankingModel, 0, hi-lo)
			for _, r := range rows[lo:hi] {
				batch = append(batch, rankingToModel(r))
			}
			if _, err := tx.NewInsert().Model(&batch).Exec(ctx); err != nil {
				return fmt.Errorf("insert rankings %d-%d: %w", lo+1, hi, MapDBError(err))
			}
			written += len(batch)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	dbLogf("db: imported %d rankings into %s in %s", written, s.dbType, time.Since(start))
	return written, nil
}

func (s *BunStore) LoadRankings(ctx context.Context) ([]model.Ranking, error) {
	var ms []RankingModel
	if err := s.bun.NewSelect().Model(&ms).OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("load keyword_rankings: %w", err)
	}
	out := make([]model.Ranking, len(ms))
	for i, m := range ms {
		out[i] = rankingModelToModel(m)
	}
	return out, nil
}

func (s *BunStore) CountRankings(ctx context.Context) (int, error) {
	var n int
	if err := QueryRawInto(ctx, s.bun, &n, "SELECT COUNT(*) FROM keyword_rankings"); err != nil {
		return 0, fmt.Errorf("count keyword_rankings: %w", err)
	}
	return n, nil
}

func (s *BunStore) Close() error {
	return s.bun.Close()
}

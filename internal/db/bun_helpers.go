// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
)

// rawQuerier is satisfied by both *bun.DB and bun.Tx.
type rawQuerier interface {
	NewRaw(query string, args ...interface{}) *bun.RawQuery
}

// ExecRaw runs a statement that returns no rows on a database or transaction.
func ExecRaw(ctx context.Context, q rawQuerier, query string, args ...interface{}) (sql.Result, error) {
	return q.NewRaw(query, args...).Exec(ctx)
}

// QueryRawInto scans the rows of query into dest.
func QueryRawInto(ctx context.Context, q rawQuerier, dest interface{}, query string, args ...interface{}) error {
	return q.NewRaw(query, args...).Scan(ctx, dest)
}

// WithTx runs fn inside a transaction that is committed when fn returns nil
// and rolled back otherwise.
func WithTx(ctx context.Context, bdb *bun.DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	return bdb.RunInTx(ctx, nil, fn)
}

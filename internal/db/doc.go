// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db keeps ranking datasets in a SQL database as an alternative to
// delimited files.
//
// Backends
//   - sqlite through modernc.org/sqlite (pure Go, the default).
//   - postgres through the pgx stdlib driver.
//   - mysql through go-sql-driver/mysql.
//
// All backends share one Bun-based Store. Schema changes live in embedded
// per-dialect migrations under `migrations/<type>` and are recorded in
// `schema_migrations`.
//
// Only the input rows are stored. RankSeries and TopKeywords results are
// computed on every run and never written back.
//
// Testing notes
//   - Use `NewStoreFromDSN("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")`
//     for a private in-memory database per test.
package db

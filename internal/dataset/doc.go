// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package dataset loads keyword ranking tables and derives their summary
// diagnostics. Parsing goes through a gota DataFrame so column types and
// null counts come from the same place for file and database sources; the
// analyses then work on typed model.Ranking rows kept in input order.
package dataset

// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/toeirei/rankscope/internal/model"
)

// Table is a loaded rankings dataset. It keeps the parsed frame, which may
// carry extra columns, next to the typed rows of the required columns.
type Table struct {
	frame dataframe.DataFrame
	rows  []model.Ranking
}

// Rows returns the typed rows in input order. Callers must not modify them.
func (t *Table) Rows() []model.Ranking { return t.rows }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the column names in file order.
func (t *Table) Columns() []string { return t.frame.Names() }

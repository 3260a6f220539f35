// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/rankscope/internal/dataset"
	"github.com/toeirei/rankscope/internal/i18n"
	"github.com/toeirei/rankscope/util/slicest"
)

func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [file]",
		Short: "Print the first rows, column info and summary statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(cmd, args)
			if err != nil {
				return err
			}
			printExplore(cmd.OutOrStdout(), t.Summarize())
			return nil
		},
	}
}

// printExplore writes the head, info and describe tables of s.
func printExplore(w io.Writer, s dataset.Summary) {
	fmt.Fprintln(w, headingStyle.Render(i18n.T("cli.explore.head", len(s.Head))))
	fmt.Fprintln(w, newTable(0).Headers(s.Header...).Rows(s.Head...).Render())
	fmt.Fprintln(w)

	info := slicest.Map(s.Columns, func(c dataset.ColumnInfo) []string {
		return []string{c.Name, c.Type, i18n.Number(c.NonNull)}
	})
	fmt.Fprintln(w, headingStyle.Render(i18n.T("cli.explore.info", i18n.Number(s.Rows))))
	fmt.Fprintln(w, newTable(1).
		Headers(i18n.T("cli.explore.column"), i18n.T("cli.explore.dtype"), i18n.T("cli.explore.non_null")).
		Rows(info...).
		Render())
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render(i18n.T("cli.explore.describe")))
	fmt.Fprintln(w, newTable(1).Headers(describeHeader(s.Stats)...).Rows(describeRows(s.Stats)...).Render())
}

// newTable returns a bordered table whose columns from firstNumeric on are
// right aligned.
func newTable(firstNumeric int) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= firstNumeric:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func describeHeader(stats []dataset.ColumnStats) []string {
	h := []string{i18n.T("cli.explore.statistic")}
	for _, c := range stats {
		h = append(h, c.Name)
	}
	return h
}

// describeRows lays out the statistics with one row per measure and one
// column per numeric column.
func describeRows(stats []dataset.ColumnStats) [][]string {
	measures := []struct {
		name  string
		value func(dataset.ColumnStats) string
	}{
		{"count", func(c dataset.ColumnStats) string { return strconv.Itoa(c.Count) }},
		{"mean", func(c dataset.ColumnStats) string { return formatStat(c.Mean) }},
		{"std", func(c dataset.ColumnStats) string { return formatStat(c.Std) }},
		{"min", func(c dataset.ColumnStats) string { return formatStat(c.Min) }},
		{"25%", func(c dataset.ColumnStats) string { return formatStat(c.Q25) }},
		{"50%", func(c dataset.ColumnStats) string { return formatStat(c.Q50) }},
		{"75%", func(c dataset.ColumnStats) string { return formatStat(c.Q75) }},
		{"max", func(c dataset.ColumnStats) string { return formatStat(c.Max) }},
	}
	rows := make([][]string, len(measures))
	for i, m := range measures {
		row := []string{m.name}
		for _, c := range stats {
			row = append(row, m.value(c))
		}
		rows[i] = row
	}
	return rows
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/rankscope/internal/chart"
	"github.com/toeirei/rankscope/internal/core"
	"github.com/toeirei/rankscope/internal/i18n"
	"github.com/toeirei/rankscope/internal/logging"
	"github.com/toeirei/rankscope/internal/model"
	"github.com/toeirei/rankscope/internal/tui"
	"golang.org/x/term"
)

// isTerminal reports whether charts can be shown interactively.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// newRenderer is replaced in tests.
var newRenderer = defaultRenderer

// defaultRenderer opens chart windows on a terminal and writes PNG files
// into the working directory otherwise.
func defaultRenderer(cmd *cobra.Command) core.Renderer {
	if isTerminal() {
		return tui.Renderer{}
	}
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	logging.Infof("%s", i18n.T("cli.headless", dir))
	return chart.ImageRenderer{Dir: dir}
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank [file]",
		Short: "Chart keyword_rank over time for one keyword and search engine",
		Long: `Selects the rows of --keyword on --engine (default 8341 on 2), sorts them
by date and charts keyword_rank with rank 1 at the top.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(cmd, args)
			if err != nil {
				return err
			}
			return runRank(cmd, t.Rows(), newRenderer(cmd))
		},
	}
}

func newTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top [file]",
		Short: "Chart the most searched keyword of every search engine",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(cmd, args)
			if err != nil {
				return err
			}
			return runTop(cmd, t.Rows(), newRenderer(cmd))
		},
	}
}

// runAll explores the dataset and draws both charts. A keyword/engine pair
// without rows only skips the rank chart.
func runAll(cmd *cobra.Command, args []string) error {
	t, err := loadTable(cmd, args)
	if err != nil {
		return err
	}
	printExplore(cmd.OutOrStdout(), t.Summarize())
	fmt.Fprintln(cmd.OutOrStdout())

	r := newRenderer(cmd)
	if err := runRank(cmd, t.Rows(), r); err != nil {
		if !errors.Is(err, core.ErrNoMatchingRows) {
			return err
		}
		logging.Warnf("%v", err)
	}
	return runTop(cmd, t.Rows(), r)
}

func runRank(cmd *cobra.Command, rows []model.Ranking, r core.Renderer) error {
	k, e := appConfig.Plot.KeywordID, appConfig.Plot.SearchEngine
	fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.rank.selected", k, e))
	if err := core.PlotRank(r, rows, k, e); err != nil {
		if errors.Is(err, core.ErrNoMatchingRows) {
			return fmt.Errorf("%s: %w", i18n.T("cli.error.no_rows", k, e), err)
		}
		return err
	}
	return nil
}

func runTop(cmd *cobra.Command, rows []model.Ranking, r core.Renderer) error {
	tops, err := core.PlotTop(r, rows)
	for _, t := range tops {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.top.result", t.SearchEngine, t.KeywordID, i18n.Number(t.Searches)))
	}
	return err
}

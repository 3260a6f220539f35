// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/rankscope/internal/dataset"
	"github.com/toeirei/rankscope/internal/i18n"
)

func newImportCmd() *cobra.Command {
	var replace bool
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Copy a dataset file into the configured database",
		Long: `Reads a dataset file and appends its rows to the keyword_rankings table.
Afterwards the other commands can read it with --source database.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := fileSource(args)
			if err != nil {
				return err
			}
			t, err := src.Load(cmd.Context())
			if errors.Is(err, dataset.ErrFileNotFound) {
				return fmt.Errorf("%s: %w", i18n.T("cli.error.file_not_found", src.Path), err)
			}
			if err != nil {
				return err
			}

			st, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			n, err := st.ImportRankings(cmd.Context(), t.Rows(), replace)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.import.done", i18n.Number(n), appConfig.Database.Type))
			return nil
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "Remove all stored rows before importing")
	return cmd
}

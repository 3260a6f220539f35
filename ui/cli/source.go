// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/rankscope/internal/config"
	"github.com/toeirei/rankscope/internal/dataset"
	"github.com/toeirei/rankscope/internal/db"
	"github.com/toeirei/rankscope/internal/i18n"
	"github.com/toeirei/rankscope/internal/logging"
)

// openStore allows tests to override database opening behavior.
var openStore = db.NewStoreFromDSN

// datasetPath returns the file argument or the configured path.
func datasetPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return appConfig.Dataset.Path
}

func fileSource(args []string) (dataset.FileSource, error) {
	delim, err := dataset.ParseDelimiter(appConfig.Dataset.Delimiter)
	if err != nil {
		return dataset.FileSource{}, err
	}
	return dataset.FileSource{Path: datasetPath(args), Delimiter: delim}, nil
}

func openDatabase() (db.Store, error) {
	st, err := openStore(appConfig.Database.Type, appConfig.Database.Dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("config.error_init_db"), err)
	}
	return st, nil
}

// loadTable reads the dataset of the current command. A file argument
// always selects that file, otherwise dataset.source decides.
func loadTable(cmd *cobra.Command, args []string) (*dataset.Table, error) {
	var src dataset.Source
	if len(args) == 0 && appConfig.Dataset.Source == config.SourceDatabase {
		st, err := openDatabase()
		if err != nil {
			return nil, err
		}
		defer func() { _ = st.Close() }()
		src = db.Source{Store: st}
		logging.Debugf("loading dataset from %s database", appConfig.Database.Type)
	} else {
		fs, err := fileSource(args)
		if err != nil {
			return nil, err
		}
		src = fs
		logging.Debugf("loading dataset from %s", fs.Path)
	}

	t, err := src.Load(cmd.Context())
	if errors.Is(err, dataset.ErrFileNotFound) {
		return nil, fmt.Errorf("%s: %w", i18n.T("cli.error.file_not_found", datasetPath(args)), err)
	}
	return t, err
}

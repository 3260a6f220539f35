// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package dataset

import "errors"

var (
	// ErrFileNotFound is returned when the dataset path does not exist.
	ErrFileNotFound = errors.New("dataset file not found")
	// ErrEmptyDataset is returned when the input holds no data rows.
	ErrEmptyDataset = errors.New("dataset is empty")
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformedRow is returned when a required cell cannot be parsed.
	ErrMalformedRow = errors.New("malformed row")
)

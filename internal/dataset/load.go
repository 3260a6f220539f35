// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package dataset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/rankscope/internal/logging"
	"github.com/toeirei/rankscope/internal/model"
)

// DefaultDelimiter separates cells in the rankings export.
const DefaultDelimiter = ';'

// columnTypes pins the dtypes of the required columns. Other columns are
// left to gota's type detection.
var columnTypes = map[string]series.Type{
	model.ColKeywordID:    series.Int,
	model.ColSearchEngine: series.Int,
	model.ColDate:         series.String,
	model.ColKeywordRank:  series.Int,
	model.ColSearches:     series.Int,
}

// Source produces a rankings table.
type Source interface {
	Load(ctx context.Context) (*Table, error)
}

// FileSource loads a delimiter-separated file from disk.
type FileSource struct {
	Path      string
	Delimiter rune
}

// Load implements Source.
func (s FileSource) Load(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	delim := s.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}
	return ReadFile(s.Path, delim)
}

// ParseDelimiter converts a configured delimiter into a rune. It accepts a
// single character, or the names "tab", `\t`, "comma" and "semicolon".
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return DefaultDelimiter, nil
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// ReadFile opens path, parses it and closes the handle before returning.
// Files ending in .zst are decompressed on the fly.
func ReadFile(path string, delimiter rune) (*Table, error) {
	rc, err := openDataset(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	t, err := Read(rc, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debugf("dataset: loaded %d rows from %s", t.Len(), path)
	return t, nil
}

// Read parses a delimiter-separated table with a header row. A leading
// UTF-8 byte order mark is skipped.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(len(utf8BOM)); err == nil && string(bom) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not read dataset: %w", err)
	}
	if strings.TrimSpace(header) == "" {
		return nil, ErrEmptyDataset
	}
	if !hasDataRows(br) {
		return nil, ErrEmptyDataset
	}

	df := dataframe.ReadCSV(io.MultiReader(strings.NewReader(header), br),
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("could not parse dataset: %w", df.Err)
	}
	return fromFrame(df)
}

const utf8BOM = "\ufeff"

// hasDataRows skips blank lines and reports whether anything follows.
func hasDataRows(br *bufio.Reader) bool {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return false
		}
		if b[0] != '\n' && b[0] != '\r' {
			return true
		}
		_, _ = br.Discard(1)
	}
}

// FromRankings builds a table from typed rows. The rows go through the same
// frame construction as file input so summaries are comparable.
func FromRankings(rows []model.Ranking) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	records := make([][]string, 0, len(rows)+1)
	records = append(records, append([]string(nil), model.RequiredColumns...))
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.KeywordID),
			strconv.Itoa(r.SearchEngine),
			model.FormatDate(r.Date),
			strconv.Itoa(r.KeywordRank),
			strconv.Itoa(r.Searches),
		})
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("could not build frame: %w", df.Err)
	}
	return fromFrame(df)
}

// fromFrame validates the required columns and converts every row.
func fromFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Nrow() == 0 {
		return nil, ErrEmptyDataset
	}
	names := df.Names()
	for _, col := range model.RequiredColumns {
		if !contains(names, col) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	keywords := df.Col(model.ColKeywordID)
	engines := df.Col(model.ColSearchEngine)
	dates := df.Col(model.ColDate)
	ranks := df.Col(model.ColKeywordRank)
	searches := df.Col(model.ColSearches)

	rows := make([]model.Ranking, df.Nrow())
	for i := range rows {
		var err error
		r := &rows[i]
		if r.KeywordID, err = intCell(keywords, i); err != nil {
			return nil, rowError(i, model.ColKeywordID, err)
		}
		if r.SearchEngine, err = intCell(engines, i); err != nil {
			return nil, rowError(i, model.ColSearchEngine, err)
		}
		if r.Date, err = model.ParseDate(strings.TrimSpace(dates.Elem(i).String())); err != nil {
			return nil, rowError(i, model.ColDate, err)
		}
		if r.KeywordRank, err = intCell(ranks, i); err != nil {
			return nil, rowError(i, model.ColKeywordRank, err)
		}
		if r.Searches, err = intCell(searches, i); err != nil {
			return nil, rowError(i, model.ColSearches, err)
		}
	}
	return &Table{frame: df, rows: rows}, nil
}

func intCell(s series.Series, i int) (int, error) {
	e := s.Elem(i)
	if e.IsNA() {
		return 0, errors.New("not an integer")
	}
	return e.Int()
}

// rowError reports i as a 1-based data row number.
func rowError(i int, column string, err error) error {
	return fmt.Errorf("%w: row %d, column %s: %v", ErrMalformedRow, i+1, column, err)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// openDataset opens path and wraps it in a zstd decoder when needed.
func openDataset(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	return &zstdFile{dec: dec, f: f}, nil
}

type zstdFile struct {
	dec *zstd.Decoder
	f   *os.File
}

func (z *zstdFile) Read(p []byte) (int, error) { return z.dec.Read(p) }

func (z *zstdFile) Close() error {
	z.dec.Close()
	return z.f.Close()
}

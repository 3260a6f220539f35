// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/toeirei/rankscope/internal/chart"
	"github.com/toeirei/rankscope/internal/config"
	"github.com/toeirei/rankscope/internal/core"
	"github.com/toeirei/rankscope/internal/dataset"
	"github.com/toeirei/rankscope/internal/i18n"
)

const sampleCSV = `keyword_id;search_engine;date;keyword_rank;searches
8341;2;2023-01-02;2;150
8341;2;2023-01-01;3;100
1200;2;2023-01-01;1;900
1200;5;2023-01-01;4;40
`

// recorder collects the charts handed to the renderer.
type recorder struct {
	lines []chart.Line
	bars  []chart.Bars
}

// setupCLI isolates config lookup in a temp dir, writes the sample dataset
// there and installs a recording renderer.
func setupCLI(t *testing.T) (dir string, rec *recorder) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := os.WriteFile(filepath.Join(dir, config.DefaultDatasetPath), []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	rec = &recorder{}
	prev := newRenderer
	newRenderer = func(*cobra.Command) core.Renderer {
		return core.RendererFuncs{
			Line: func(l chart.Line) error { rec.lines = append(rec.lines, l); return nil },
			Bars: func(b chart.Bars) error { rec.bars = append(rec.bars, b); return nil },
		}
	}
	t.Cleanup(func() {
		newRenderer = prev
		i18n.Init("en")
	})
	return dir, rec
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_RunsExploreAndBothCharts(t *testing.T) {
	_, rec := setupCLI(t)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}
	for _, want := range []string{"First 4 rows", "Columns (4 rows)", "Summary statistics", "keyword_rank", "search_engine 2: keyword_id 1200 with 900 searches"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if len(rec.lines) != 1 || len(rec.bars) != 1 {
		t.Fatalf("expected one line and one bar chart, got %d and %d", len(rec.lines), len(rec.bars))
	}
	if got := len(rec.lines[0].Points); got != 2 {
		t.Fatalf("expected 2 points for 8341/2, got %d", got)
	}
}

func TestRoot_MissingPairStillDrawsTopChart(t *testing.T) {
	_, rec := setupCLI(t)

	if _, err := execute(t, "--keyword", "1", "--engine", "1"); err != nil {
		t.Fatalf("root command failed: %v", err)
	}
	if len(rec.lines) != 0 || len(rec.bars) != 1 {
		t.Fatalf("expected only the bar chart, got %d lines and %d bars", len(rec.lines), len(rec.bars))
	}
}

func TestRank_SortsByDateAndUsesFlags(t *testing.T) {
	_, rec := setupCLI(t)

	out, err := execute(t, "rank", "--keyword", "8341", "--engine", "2")
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if !strings.Contains(out, "keyword_id 8341 on search_engine 2") {
		t.Fatalf("unexpected output: %s", out)
	}
	if len(rec.lines) != 1 {
		t.Fatalf("expected one line chart, got %d", len(rec.lines))
	}
	pts := rec.lines[0].Points
	if pts[0].Y != 3 || pts[1].Y != 2 {
		t.Fatalf("expected ranks [3 2], got %+v", pts)
	}
}

func TestRank_NoMatchingRows(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "rank", "--keyword", "1", "--engine", "9")
	if !errors.Is(err, core.ErrNoMatchingRows) {
		t.Fatalf("expected ErrNoMatchingRows, got %v", err)
	}
	if !strings.Contains(err.Error(), "keyword_id 1 and search_engine 9") {
		t.Fatalf("expected localized message, got %v", err)
	}
}

func TestTop_PrintsEnginesInOrder(t *testing.T) {
	_, rec := setupCLI(t)

	out, err := execute(t, "top")
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	i2 := strings.Index(out, "search_engine 2: keyword_id 1200")
	i5 := strings.Index(out, "search_engine 5: keyword_id 1200 with 40 searches")
	if i2 < 0 || i5 < 0 || i2 > i5 {
		t.Fatalf("unexpected top output:\n%s", out)
	}
	if len(rec.bars) != 1 || len(rec.bars[0].Bars) != 2 {
		t.Fatalf("expected one chart with two bars, got %+v", rec.bars)
	}
}

func TestExplore_FileArgumentAndDelimiter(t *testing.T) {
	dir, _ := setupCLI(t)
	path := filepath.Join(dir, "comma.csv")
	if err := os.WriteFile(path, []byte(strings.ReplaceAll(sampleCSV, ";", ",")), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := execute(t, "explore", "--delimiter", "comma", path)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}
	if !strings.Contains(out, "searches") || !strings.Contains(out, "75%") {
		t.Fatalf("unexpected explore output:\n%s", out)
	}
}

func TestExplore_MissingFile(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "explore", "nope.csv")
	if !errors.Is(err, dataset.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope.csv") {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestImport_ThenReadFromDatabase(t *testing.T) {
	dir, rec := setupCLI(t)
	dsn := filepath.Join(dir, "rankscope.db")

	out, err := execute(t, "import", "--database.dsn", dsn)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, "Imported 4 rows into sqlite") {
		t.Fatalf("unexpected import output: %s", out)
	}
	if _, err := execute(t, "import", "--replace", "--database.dsn", dsn); err != nil {
		t.Fatalf("replace import failed: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, config.DefaultDatasetPath)); err != nil {
		t.Fatalf("remove dataset: %v", err)
	}
	out, err = execute(t, "top", "--source", "database", "--database.dsn", dsn)
	if err != nil {
		t.Fatalf("top from database failed: %v", err)
	}
	if !strings.Contains(out, "search_engine 2: keyword_id 1200 with 900 searches") {
		t.Fatalf("replace import should not duplicate rows:\n%s", out)
	}
	if len(rec.bars) != 1 {
		t.Fatalf("expected one bar chart, got %d", len(rec.bars))
	}
}

func TestLanguageFlag_LocalizesOutput(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "top", "--language", "de")
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if !strings.Contains(out, "mit 900 Suchen") {
		t.Fatalf("expected German output, got:\n%s", out)
	}
}

func TestFirstRun_WritesDefaultConfig(t *testing.T) {
	setupCLI(t)

	if _, err := execute(t, "explore"); err != nil {
		t.Fatalf("explore failed: %v", err)
	}
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "keyword_rankings.csv") {
		t.Fatalf("unexpected default config:\n%s", data)
	}
}

func TestInvalidSourceIsRejected(t *testing.T) {
	setupCLI(t)

	if _, err := execute(t, "explore", "--source", "ftp"); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}

func TestVersionAndDebug(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "version")
	if err != nil || !strings.Contains(out, "version: ") {
		t.Fatalf("unexpected version output %q (%v)", out, err)
	}

	out, err = execute(t, "debug")
	if err != nil {
		t.Fatalf("debug failed: %v", err)
	}
	for _, want := range []string{"--- RANKSCOPE DEBUG ---", "dataset:", "de = Deutsch"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in debug output:\n%s", want, out)
		}
	}
}

func TestDefaultRenderer_HeadlessWritesImages(t *testing.T) {
	dir, _ := setupCLI(t)
	prev := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = prev }()

	r, ok := defaultRenderer(&cobra.Command{}).(chart.ImageRenderer)
	if !ok {
		t.Fatalf("expected ImageRenderer when headless")
	}
	got, _ := filepath.EvalSymlinks(filepath.Dir(r.Path(core.RankChartName)))
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Fatalf("expected images in %s, got %s", want, got)
	}
}

func TestFirstRun_DoesNotPersistFlagOverrides(t *testing.T) {
	setupCLI(t)

	if _, err := execute(t, "top", "--engine", "5"); err != nil {
		t.Fatalf("top failed: %v", err)
	}
	path, _ := config.GetConfigPath(false)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "search_engine: 2") {
		t.Fatalf("expected default engine in written config:\n%s", data)
	}
}

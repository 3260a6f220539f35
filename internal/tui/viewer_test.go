// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rankscope/internal/chart"
	"github.com/toeirei/rankscope/internal/i18n"
)

func testLine() chart.Line {
	d := func(n int) time.Time { return time.Date(2023, 1, n, 0, 0, 0, 0, time.UTC) }
	return chart.Line{
		Name:    "keyword_rank",
		Title:   "keyword_rank vs dates",
		XLabel:  "dates",
		YLabel:  "keyword_rank",
		Points:  []chart.Point{{X: d(1), Y: 3}, {X: d(2), Y: 2}},
		InvertY: true,
	}
}

func resize(t *testing.T, m chartModel, w, h int) chartModel {
	t.Helper()
	mi, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return mi.(chartModel)
}

func TestChartModel_LoadingUntilSized(t *testing.T) {
	i18n.Init("en")
	m := newLineModel(testLine())
	if got := m.View(); !strings.Contains(got, i18n.T("chart.loading")) {
		t.Fatalf("expected loading view, got %q", got)
	}
}

func TestChartModel_ViewFillsWindow(t *testing.T) {
	i18n.Init("en")
	m := resize(t, newLineModel(testLine()), 60, 20)
	view := m.View()
	if n := len(strings.Split(view, "\n")); n != 20 {
		t.Fatalf("expected 20 lines, got %d", n)
	}
	if !strings.Contains(view, "keyword_rank vs dates") {
		t.Fatalf("expected title in view")
	}
	if !strings.Contains(view, "close") {
		t.Fatalf("expected help footer in view")
	}

	m = resize(t, m, 80, 30)
	if n := len(strings.Split(m.View(), "\n")); n != 30 {
		t.Fatalf("expected 30 lines after resize, got %d", n)
	}
}

func TestChartModel_CloseKeys(t *testing.T) {
	i18n.Init("en")
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := newLineModel(testLine()).Update(k)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %q", k.String())
		}
	}
}

func TestChartModel_CopyWritesChartData(t *testing.T) {
	i18n.Init("en")
	var copied string
	old := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	defer func() { clipboardWrite = old }()

	l := testLine()
	m := resize(t, newLineModel(l), 60, 20)
	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd != nil {
		t.Fatalf("copy should not return a command")
	}
	m = mi.(chartModel)
	if copied != l.Text() {
		t.Fatalf("unexpected clipboard content: %q", copied)
	}
	if m.status != i18n.T("chart.copied") || m.err != nil {
		t.Fatalf("unexpected status %q (err %v)", m.status, m.err)
	}
}

func TestChartModel_CopyFailureShowsError(t *testing.T) {
	i18n.Init("en")
	old := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	defer func() { clipboardWrite = old }()

	bars := chart.Bars{Title: "top", Bars: []chart.Bar{{Label: "2", Value: 30, Annotation: "8341"}}}
	m := resize(t, newBarsModel(bars), 60, 20)
	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = mi.(chartModel)
	if m.err == nil || !strings.Contains(m.status, "no clipboard") {
		t.Fatalf("expected copy failure status, got %q", m.status)
	}
	if !strings.Contains(m.View(), "no clipboard") {
		t.Fatalf("expected failure in footer")
	}
}

func TestAlignFooter(t *testing.T) {
	if got := AlignFooter("a", "b", 5); got != "a   b" {
		t.Fatalf("unexpected footer %q", got)
	}
	if got := AlignFooter("left", "right", 3); got != "left right" {
		t.Fatalf("unexpected narrow footer %q", got)
	}
}

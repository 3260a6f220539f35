// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui shows charts in full-screen terminal windows. Each chart runs
// as its own bubbletea program and blocks until the user dismisses it.
package tui // import "github.com/toeirei/rankscope/internal/tui"

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rankscope/internal/chart"
	"github.com/toeirei/rankscope/internal/core"
	"github.com/toeirei/rankscope/internal/i18n"
	"github.com/toeirei/rankscope/internal/logging"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// chartModel is a single chart window.
type chartModel struct {
	title  string
	draw   func(width, height int) string
	data   string
	keys   keyMap
	help   help.Model
	width  int
	height int
	status string
	err    error
}

func newChartModel(title, data string, draw func(width, height int) string) chartModel {
	h := help.New()
	h.Styles.ShortKey = helpStyle.Bold(true)
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle
	return chartModel{title: title, data: data, draw: draw, keys: newKeyMap(), help: h}
}

func newLineModel(l chart.Line) chartModel {
	return newChartModel(l.Title, l.Text(), func(w, h int) string { return chart.RenderLine(l, w, h) })
}

func newBarsModel(c chart.Bars) chartModel {
	return newChartModel(c.Title, c.Text(), func(w, h int) string { return chart.RenderBars(c, w, h) })
}

func (m chartModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			if err := clipboardWrite(m.data); err != nil {
				logging.Warnf("clipboard: %v", err)
				m.status, m.err = i18n.T("chart.copy_failed", err), err
			} else {
				m.status, m.err = i18n.T("chart.copied"), nil
			}
		}
	}
	return m, nil
}

func (m chartModel) View() string {
	if m.width == 0 || m.height == 0 {
		return loadingStyle.Render(i18n.T("chart.loading"))
	}
	status := successStyle.Render(m.status)
	if m.err != nil {
		status = errorStyle.Render(m.status)
	}
	footer := AlignFooter(m.help.View(m.keys), status, m.width)
	return m.draw(m.width, m.height-1) + "\n" + footer
}

// Renderer shows charts in interactive terminal windows.
type Renderer struct {
	// Options are appended to the program options, after the alt screen.
	Options []tea.ProgramOption
}

var _ core.Renderer = Renderer{}

// RenderLine blocks until the line chart window is closed.
func (r Renderer) RenderLine(l chart.Line) error {
	return r.run(newLineModel(l))
}

// RenderBars blocks until the bar chart window is closed.
func (r Renderer) RenderBars(c chart.Bars) error {
	return r.run(newBarsModel(c))
}

func (r Renderer) run(m chartModel) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, r.Options...)
	logging.Debugf("opening chart window %q", m.title)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("chart window %q: %w", m.title, err)
	}
	return nil
}

// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package chart

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used by terminal charts.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for special attention
	colorAxis      = lipgloss.Color("250")
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	noDataStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	// cellStyles is indexed by cell kind.
	cellStyles = [...]lipgloss.Style{
		cellEmpty:  lipgloss.NewStyle(),
		cellGrid:   lipgloss.NewStyle().Foreground(colorSubtle),
		cellAxis:   lipgloss.NewStyle().Foreground(colorAxis),
		cellLine:   lipgloss.NewStyle().Foreground(colorHighlight),
		cellMarker: lipgloss.NewStyle().Foreground(colorHighlight).Bold(true),
		cellBar:    lipgloss.NewStyle().Foreground(colorHighlight),
		cellNote:   lipgloss.NewStyle().Foreground(colorSpecial),
	}
)

// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	borderStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	headerStyle  = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
)

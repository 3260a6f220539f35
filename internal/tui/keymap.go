// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/rankscope/internal/i18n"
)

type keyMap struct {
	Close key.Binding
	Copy  key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Close, km.Copy}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Close, km.Copy}}
}

// *keyMap implements help.KeyMap
var _ help.KeyMap = (*keyMap)(nil)

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Close: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", i18n.T("chart.help.close")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("chart.help.copy")),
		),
	}
}

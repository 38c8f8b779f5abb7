// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/connprompt/internal/i18n"
)

type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Cancel key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Cancel}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Prev}, {km.Cancel}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the form bindings in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T("keys.next")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", i18n.T("keys.prev")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("keys.cancel")),
		),
	}
}

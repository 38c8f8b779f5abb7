// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/connprompt/internal/i18n"
)

type KeyMap struct {
	Exit key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Exit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func NewBaseKeyMap() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("keys.quit")),
		),
	}
}

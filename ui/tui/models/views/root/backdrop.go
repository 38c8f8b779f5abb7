// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/ui/tui/util"
)

// backdrop fills the space behind the popup.
type backdrop struct {
	size util.Size
}

func (b backdrop) Init() tea.Cmd {
	return nil
}

func (b *backdrop) Update(msg tea.Msg) tea.Cmd {
	b.size.Update(msg)
	return nil
}

func (b backdrop) View() string {
	return lipgloss.Place(max(b.size.Width, 0), max(b.size.Height, 0), lipgloss.Left, lipgloss.Top, "")
}

func (b *backdrop) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (b *backdrop) Blur() {}

var _ util.Model = (*backdrop)(nil)

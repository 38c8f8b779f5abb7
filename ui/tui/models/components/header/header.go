// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/ui/tui/util"
)

// Height is the number of lines the header occupies.
const Height = 2

var textStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))

// Model is the application banner drawn behind the dialog.
type Model struct {
	text string
	size util.Size
}

func New(text string) *Model {
	return &Model{text: text}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			max(m.size.Width, 0),
			lipgloss.Center,
			textStyle.Render(m.text),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/ui/tui/util"
)

// Height is the number of lines the footer occupies.
const Height = 2

// Model shows the key bindings of whatever currently has focus.
type Model struct {
	baseKeyMap help.KeyMap
	keyMap     help.KeyMap
	size       util.Size
	help       help.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		keyMap:     baseKeyMap,
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// catch AnnounceKeyMapMsg and inject baseKeyMap
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.keyMap = util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap)
		return nil
	}

	if m.size.Update(msg) {
		m.help.Width = m.size.Width
	}
	return nil
}

func (m Model) View() string {
	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Width(max(m.size.Width, 0)).
		Render(m.help.ShortHelpView(m.keyMap.ShortHelp()))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

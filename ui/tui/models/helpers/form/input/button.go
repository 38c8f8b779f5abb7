// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/ui/tui/models/helpers/form"
)

type Button struct {
	Label    string
	Action   form.Action
	Disabled bool
	KeyMap   ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

// NewButton creates a button reporting action to its form when clicked.
func NewButton(label string, action form.Action) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())

	return &Button{
		Label:  label,
		Action: action,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: base.
			BorderForeground(lipgloss.Color("237")).
			Foreground(lipgloss.Color("237")),
		BlurredStyle: base.
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("240")),
		FocusedStyle: base.
			BorderForeground(lipgloss.Color("81")).
			Foreground(lipgloss.Color("231")).
			Bold(true),
	}
}

func (b *Button) Passive() bool { return b.Disabled }

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		return nil, b.Action
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	if b.Disabled {
		style = b.DisabledStyle
	} else if b.focused {
		style = b.FocusedStyle
	}
	if width > 2 {
		style = style.MaxWidth(width - 2)
	}
	return style.Render(b.Label)
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var (
	_ form.FormInput = (*Button)(nil)
	_ form.Passive   = (*Button)(nil)
)

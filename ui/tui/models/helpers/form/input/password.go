// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/internal/i18n"
	"github.com/toeirei/connprompt/ui/tui/models/helpers/form"
)

// Password is a masked single line text input.
type Password struct {
	KeyMap PasswordKeyMap

	FocusedStyle lipgloss.Style
	BlurredStyle lipgloss.Style

	input   textinput.Model
	focused bool
}

type PasswordKeyMap struct {
	Next key.Binding
}

func (k PasswordKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k PasswordKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewPassword() *Password {
	input := textinput.New()
	input.Prompt = "> "
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'

	return &Password{
		KeyMap: PasswordKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("keys.next")),
			),
		},
		FocusedStyle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("81")),
		BlurredStyle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240")),
		input: input,
	}
}

func (p *Password) Blur() {
	p.input.Blur()
	p.focused = false
}

func (p *Password) Focus() (tea.Cmd, help.KeyMap) {
	p.focused = true
	return p.input.Focus(), p.KeyMap
}

func (p *Password) Get() any {
	return p.input.Value()
}

func (p *Password) Init() tea.Cmd {
	return textinput.Blink
}

func (p *Password) Reset() {
	p.input.SetValue("")
}

func (p *Password) Set(value any) {
	if value, ok := value.(string); ok {
		p.input.SetValue(value)
	}
}

func (p *Password) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, p.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd, form.ActionNone
}

// SetWidth fits the text input into width columns, leaving room for the
// border and padding.
func (p *Password) SetWidth(width int) {
	if width > 4 {
		p.input.Width = width - 4
	}
}

// Width returns the width of the text input itself.
func (p *Password) Width() int {
	return p.input.Width
}

func (p *Password) View(width int) string {
	style := p.BlurredStyle
	if p.focused {
		style = p.FocusedStyle
	}
	return style.Width(max(width, 0)).Render(p.input.View())
}

var _ form.FormInput = (*Password)(nil)

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/internal/i18n"
	"github.com/toeirei/connprompt/ui/tui/models/helpers/form"
)

// Checkbox is a boolean toggle. A disabled checkbox keeps its value, is
// rendered greyed out and never takes focus.
type Checkbox struct {
	Label    string
	Disabled bool
	KeyMap   CheckboxKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	checked bool
	focused bool
}

type CheckboxKeyMap struct {
	Toggle key.Binding
	Next   key.Binding
}

func (k CheckboxKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Toggle, k.Next} }

func (k CheckboxKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Toggle, k.Next}} }

func NewCheckbox(label string, disabled bool) *Checkbox {
	return &Checkbox{
		Label:    label,
		Disabled: disabled,
		KeyMap: CheckboxKeyMap{
			Toggle: key.NewBinding(
				key.WithKeys(" "),
				key.WithHelp("space", i18n.T("keys.toggle")),
			),
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("keys.next")),
			),
		},
		DisabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		BlurredStyle:  lipgloss.NewStyle(),
		FocusedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
	}
}

// Checked reports the current value.
func (c *Checkbox) Checked() bool { return c.checked }

func (c *Checkbox) Passive() bool { return c.Disabled }

func (c *Checkbox) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.KeyMap
}

func (c *Checkbox) Blur() {
	c.focused = false
}

func (c *Checkbox) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Disabled {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(kmsg, c.KeyMap.Toggle):
		c.checked = !c.checked
	case key.Matches(kmsg, c.KeyMap.Next):
		return nil, form.ActionNext
	}
	return nil, form.ActionNone
}

func (c *Checkbox) View(width int) string {
	box := "[ ] "
	if c.checked {
		box = "[x] "
	}
	style := c.BlurredStyle
	switch {
	case c.Disabled:
		style = c.DisabledStyle
	case c.focused:
		style = c.FocusedStyle
	}
	return style.MaxWidth(max(width, 0)).Render(box + c.Label)
}

func (c *Checkbox) Get() any      { return c.checked }
func (c *Checkbox) Init() tea.Cmd { return nil }
func (c *Checkbox) Reset()        { c.checked = false }

func (c *Checkbox) Set(value any) {
	if value, ok := value.(bool); ok {
		c.checked = value
	}
}

var (
	_ form.FormInput = (*Checkbox)(nil)
	_ form.Passive   = (*Checkbox)(nil)
)

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/ui/tui/models/helpers/form"
)

// Static renders wrapped text inside a form and never takes focus.
type Static struct {
	Text  string
	Style lipgloss.Style
}

func NewStatic(text string, style lipgloss.Style) *Static {
	return &Static{Text: text, Style: style}
}

func (s *Static) Passive() bool { return true }

func (s *Static) View(width int) string {
	if width > 0 {
		return s.Style.Width(width).Render(s.Text)
	}
	return s.Style.Render(s.Text)
}

// not needed
func (s *Static) Focus() (tea.Cmd, help.KeyMap)         { return nil, nil }
func (s *Static) Blur()                                 {}
func (s *Static) Update(tea.Msg) (tea.Cmd, form.Action) { return nil, form.ActionNone }
func (s *Static) Get() any                              { return nil }
func (s *Static) Init() tea.Cmd                         { return nil }
func (s *Static) Reset()                                {}
func (s *Static) Set(any)                               {}

var (
	_ form.FormInput = (*Static)(nil)
	_ form.Passive   = (*Static)(nil)
)

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

// Title returns the title currently shown.
func (t TitleHandler) Title() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t TitleHandler) render() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

func (t TitleHandler) Init() tea.Cmd {
	return t.render()
}

func (t *TitleHandler) Handle(msg tea.Msg) tea.Cmd {
	if title, ok := msg.(titleMsg); ok {
		if t.current != string(title) {
			t.current = string(title)
			return t.render()
		}
	}
	return nil
}

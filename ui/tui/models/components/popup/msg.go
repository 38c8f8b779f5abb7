// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/connprompt/ui/tui/util"
)

type openMsg struct {
	Model   *util.Model
	OnClose func(*util.Model) tea.Cmd
}

type closeMsg struct{}

func Open(m *util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

// OpenWithCallback opens m and runs cb once the popup has been closed.
func OpenWithCallback(m *util.Model, cb func(*util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, OnClose: cb} }
}

// Close closes the top-most popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}

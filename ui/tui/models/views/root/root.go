// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the top level tea.Model. It shows a single dialog inside a
// popup and quits the program once that popup has been closed.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/buildvars"
	"github.com/toeirei/connprompt/ui/tui/models/components/header"
	"github.com/toeirei/connprompt/ui/tui/models/components/popup"
	windowtitle "github.com/toeirei/connprompt/ui/tui/models/helpers/title"
	"github.com/toeirei/connprompt/ui/tui/models/views/footer"
	"github.com/toeirei/connprompt/ui/tui/util"
)

const title string = "connprompt"

var BaseKeyMap = NewBaseKeyMap()

type Model struct {
	dialog       *util.Model
	header       *header.Model
	injector     *popup.Injector
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
	size         util.Size
}

func New(dialog *util.Model) *Model {
	version := buildvars.VersionOrDefault("dev")
	return &Model{
		dialog:       dialog,
		header:       header.New(fmt.Sprintf("%s %s", title, version)),
		injector:     popup.NewInjector(util.ModelPointer(&backdrop{})),
		footer:       footer.New(&BaseKeyMap),
		titleHandler: windowtitle.NewHandler(title, " | "),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.titleHandler.Init(),
		m.injector.Init(),
		m.OpenDialog(),
	)
}

// OpenDialog pushes the dialog into the popup host. Closing it quits.
func (m Model) OpenDialog() tea.Cmd {
	return popup.OpenWithCallback(m.dialog, func(*util.Model) tea.Cmd {
		return tea.Quit
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, BaseKeyMap.Exit) {
			return m, tea.Quit
		}
		return m, m.injector.Update(msg)
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.header.Update(tea.WindowSizeMsg{Width: msg.Width, Height: header.Height})
		m.footer.Update(tea.WindowSizeMsg{Width: msg.Width, Height: footer.Height})
		return m, m.injector.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: max(msg.Height-header.Height-footer.Height, 0),
		})
	case util.AnnounceKeyMapMsg:
		return m, m.footer.Update(msg)
	}
	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	// handle other messages
	return m, m.injector.Update(msg)
}

func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.injector.View(),
		m.footer.View(),
	)
}

// Title returns the current terminal title.
func (m Model) Title() string {
	return m.titleHandler.Title()
}

// Popups returns the number of open popups.
func (m Model) Popups() int {
	return m.injector.Len()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

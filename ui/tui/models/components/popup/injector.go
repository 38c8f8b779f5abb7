// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup hosts modal dialogs on top of another view. Popups are kept
// on a stack; only the top-most one receives input.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/connprompt/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSizeMsg()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	}

	return (*m.activeModel()).Update(msg)
}

// Len returns the number of open popups.
func (m Injector) Len() int {
	return len(m.popups)
}

func (m Injector) popupSizeMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

// applyView centers v2 on top of v1.
func (m *Injector) applyView(v1, v2 string) string {
	v1Width, v1Height := lipgloss.Size(v1)
	v2Width, v2Height := lipgloss.Size(v2)
	if v2Width > v1Width || v2Height > v1Height {
		return v2
	}

	offsetLeft := (v1Width - v2Width) / 2
	offsetTop := (v1Height - v2Height) / 2

	v1Lines := strings.Split(v1, "\n")
	v2Lines := strings.Split(v2, "\n")

	for i := range v2Lines {
		line := v1Lines[i+offsetTop]
		left := ansi.Truncate(line, offsetLeft, "")
		right := ansi.TruncateLeft(line, offsetLeft+v2Width, "")
		// v2 lines may be shorter than the widest one
		pad := v2Width - ansi.StringWidth(v2Lines[i])
		v1Lines[i+offsetTop] = left + v2Lines[i] + strings.Repeat(" ", max(pad, 0)) + right
	}

	return strings.Join(v1Lines, "\n")
}

func (m Injector) View() string {
	childView := (*m.child).View()

	if len(m.popups) > 0 {
		popupView := lipgloss.
			NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Margin(0, 1).
			Render((*m.activeModel()).View())

		childView = lipgloss.
			NewStyle().
			Foreground(lipgloss.AdaptiveColor{
				Light: "#DDDADA",
				Dark:  "#3C3C3C",
			}).
			Render(ansi.Strip(childView))

		return m.applyView(childView, popupView)
	}
	return childView
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) open(p popup) tea.Cmd {
	// blur active view
	m.Blur()
	m.popups = append(m.popups, p)
	// init and focus new popup
	return tea.Batch(
		(*p.model).Init(),
		m.focusActiveModel(),
		(*m.activeModel()).Update(m.popupSizeMsg()),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}
	m.Blur()
	var onCloseCmd tea.Cmd
	if p := m.popups[len(m.popups)-1]; p.onClose != nil {
		onCloseCmd = p.onClose(p.model)
	}
	m.popups = m.popups[:len(m.popups)-1]
	// focus underlying view
	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

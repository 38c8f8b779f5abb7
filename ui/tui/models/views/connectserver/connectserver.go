// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package connectserver implements the dialog asking for the passwords needed
// to connect to a database server. The dialog never connects anywhere: on OK
// it hands the collected values to the caller's OnOK callback and asks the
// caller to close it.
package connectserver

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/connprompt/core/prompt"
	"github.com/toeirei/connprompt/internal/i18n"
	"github.com/toeirei/connprompt/internal/logging"
	"github.com/toeirei/connprompt/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/connprompt/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/connprompt/ui/tui/models/helpers/title"
	"github.com/toeirei/connprompt/ui/tui/util"
)

type state int

const (
	stateOpen state = iota
	stateClosed
)

// Model is the connect-server dialog shown inside a popup.
type Model struct {
	closeModal func() tea.Cmd
	onOK       func(prompt.Payload) tea.Cmd
	data       *prompt.PromptData

	form  *form.Form[prompt.FormState]
	state state
	size  util.Size
}

// New builds the dialog. closeModal is required; onOK may be nil. A nil
// data renders a placeholder without any controls.
func New(closeModal func() tea.Cmd, data *prompt.PromptData, onOK func(prompt.Payload) tea.Cmd) *Model {
	m := &Model{
		closeModal: closeModal,
		onOK:       onOK,
		data:       data,
	}
	if data != nil {
		m.form = m.newForm(*data)
	}
	return m
}

func (m *Model) newForm(data prompt.PromptData) *form.Form[prompt.FormState] {
	opts := []form.NewOpt[prompt.FormState]{
		form.WithOnSubmit(m.submit),
		form.WithOnCancel[prompt.FormState](m.cancel),
	}

	if data.PromptTunnelPassword {
		opts = append(opts,
			form.WithInput[prompt.FormState]("", forminput.NewStatic(prompt.TunnelMessage(data), messageStyle)),
			form.WithInput[prompt.FormState](prompt.KeyTunnelPassword, forminput.NewPassword()),
			form.WithInput[prompt.FormState](prompt.KeySaveTunnelPassword,
				forminput.NewCheckbox(i18n.T("connect.save_password"), !data.AllowSaveTunnelPassword)),
		)
	}
	if data.PromptPassword {
		opts = append(opts,
			form.WithInput[prompt.FormState]("", forminput.NewStatic(prompt.PasswordMessage(data), messageStyle)),
			form.WithInput[prompt.FormState](prompt.KeyPassword, forminput.NewPassword()),
			form.WithInput[prompt.FormState](prompt.KeySavePassword,
				forminput.NewCheckbox(i18n.T("connect.save_password"), !data.AllowSavePassword)),
		)
	}

	opts = append(opts,
		form.WithInput[prompt.FormState]("", forminput.NewStatic(data.ErrMsg, errorStyle)),
		form.WithRow[prompt.FormState](
			forminput.NewButton(i18n.T("connect.cancel"), form.ActionCancel),
			forminput.NewButton(i18n.T("connect.ok"), form.ActionSubmit),
		),
	)

	f := form.New(opts...)
	f.SetWidth(maxWidth)
	return &f
}

// Closed reports whether Cancel or OK has been chosen.
func (m Model) Closed() bool {
	return m.state == stateClosed
}

func (m Model) Init() tea.Cmd {
	if m.data == nil {
		return nil
	}
	return tea.Batch(
		m.form.Init(),
		windowtitle.Set(m.data.ServerLabel),
	)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if m.form != nil {
			m.form.SetWidth(m.width())
		}
		return nil
	}
	if m.form == nil || m.state == stateClosed {
		return nil
	}

	var cmd tea.Cmd
	*m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) width() int {
	if m.size.Width > 0 && m.size.Width < maxWidth {
		return m.size.Width
	}
	return maxWidth
}

func (m Model) View() string {
	if m.data == nil {
		return placeholderStyle.Render(i18n.T("connect.no_data"))
	}
	return titleStyle.Render(i18n.T("connect.title")) + "\n" + m.form.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	if m.form == nil {
		return nil, nil
	}
	return m.form.Focus()
}

func (m *Model) Blur() {
	if m.form != nil {
		m.form.Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) submit(values prompt.FormState, err error) tea.Cmd {
	if m.state == stateClosed {
		return nil
	}
	if err != nil {
		logging.Errorf("connect dialog: could not read form values: %v", err)
		return nil
	}
	m.state = stateClosed

	payload := prompt.BuildPayload(*m.data, values)
	logging.Debugf("connect dialog: submitting [%s] for %q", payload, m.data.ServerLabel)

	var okCmd tea.Cmd
	if m.onOK != nil {
		okCmd = m.onOK(payload)
	}
	return tea.Sequence(okCmd, m.close())
}

func (m *Model) cancel() tea.Cmd {
	if m.state == stateClosed {
		return nil
	}
	m.state = stateClosed
	logging.Debugf("connect dialog: cancelled")
	return m.close()
}

func (m *Model) close() tea.Cmd {
	if m.closeModal == nil {
		return nil
	}
	return m.closeModal()
}

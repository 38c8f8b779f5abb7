// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/connprompt/core/prompt"
	"github.com/toeirei/connprompt/internal/logging"
	"github.com/toeirei/connprompt/ui/tui/models/components/popup"
	"github.com/toeirei/connprompt/ui/tui/models/views/connectserver"
	"github.com/toeirei/connprompt/ui/tui/models/views/root"
	"github.com/toeirei/connprompt/ui/tui/util"
)

// Result is what the dialog produced. Submitted is false when the dialog was
// cancelled or the program was quit.
type Result struct {
	Payload   prompt.Payload
	Submitted bool
}

// NewModel builds the root model for data and reports the payload into res
// when the user confirms the dialog.
func NewModel(data *prompt.PromptData, res *Result) *root.Model {
	dialog := connectserver.New(popup.Close, data, func(p prompt.Payload) tea.Cmd {
		res.Payload = p
		res.Submitted = true
		return nil
	})
	return root.New(util.ModelPointer(dialog))
}

// Run shows the dialog for data and blocks until it has been closed or ctx
// is done. opts are appended to the default program options.
func Run(ctx context.Context, data *prompt.PromptData, opts ...tea.ProgramOption) (Result, error) {
	var res Result
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)

	if _, err := tea.NewProgram(NewModel(data, &res), opts...).Run(); err != nil {
		return Result{}, err
	}
	logging.Debugf("dialog closed, submitted=%t", res.Submitted)
	return res, nil
}

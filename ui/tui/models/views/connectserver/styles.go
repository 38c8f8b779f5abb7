// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package connectserver

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
)

const maxWidth = 60

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	messageStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			PaddingTop(1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorSubtle)
)

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{keyMap: DefaultKeyMap()}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithInput adds an input on a row of its own. Its value is stored under id.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.rows = append(form.rows, formRow{items: []int{len(form.items)}})
		form.items = append(form.items, formItem{id: id, input: input})
	}
}

// WithRow adds inputs side by side. Values of row inputs are not collected.
func WithRow[T any](inputs ...FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		var row formRow
		for _, input := range inputs {
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{input: input})
		}
		form.rows = append(form.rows, row)
	}
}

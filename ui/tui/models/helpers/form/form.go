// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/connprompt/ui/tui/util"
	"github.com/toeirei/connprompt/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// Passive is implemented by inputs that are rendered but can not take focus
// in their current state, e.g. static text or a disabled checkbox.
type Passive interface {
	Passive() bool
}

// Resizable is implemented by inputs that keep layout state depending on
// the width they are given.
type Resizable interface {
	SetWidth(width int)
}

type formItem struct {
	id    string
	input FormInput
}

func (i formItem) passive() bool {
	p, ok := i.input.(Passive)
	return ok && p.Passive()
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	keyMap      KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		f.SetWidth(f.size.Width)
		return f, nil
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	// handle key updates for form
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f, f.changeActiveIndex(-1)
		case key.Matches(kmsg, f.keyMap.Cancel):
			return f, f.cancel()
		}
	}

	// pass msg to active input
	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			if len(row.items) == 0 {
				return ""
			}
			return lipgloss.JoinHorizontal(
				lipgloss.Center,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(f.size.Width / len(row.items))
				})...,
			)
		})...,
	)
}

// SetWidth sets the width rows are laid out in.
func (f *Form[T]) SetWidth(width int) {
	f.size.Width = width
	for _, row := range f.rows {
		for _, index := range row.items {
			if r, ok := f.items[index].input.(Resizable); ok {
				r.SetWidth(width / len(row.items))
			}
		}
	}
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.keyMap
	}
	if f.items[f.activeIndex].passive() {
		if next, ok := f.nextFocusable(f.activeIndex, 1); ok {
			f.activeIndex = next
		}
	}
	return f.focusActive()
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// Focused reports whether the form currently has focus.
func (f Form[T]) Focused() bool {
	return f.focused
}

// ActiveIndex returns the index of the input that has, or will get, focus.
func (f Form[T]) ActiveIndex() int {
	return f.activeIndex
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	f.activeIndex = 0
	if !f.focused || len(f.items) == 0 {
		return nil
	}
	cmd, _ := f.Focus()
	return cmd
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	var submitCmd tea.Cmd
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) cancel() tea.Cmd {
	if f.OnCancel != nil {
		return f.OnCancel()
	}
	return nil
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		actionCmd = f.cancel()
	}

	return tea.Batch(updateCmd, actionCmd)
}

// nextFocusable walks from index in direction step (wrapping around) and
// returns the first input that is not passive.
func (f *Form[T]) nextFocusable(index, step int) (int, bool) {
	n := len(f.items)
	for i := 1; i <= n; i++ {
		candidate := ((index+step*i)%n + n) % n
		if !f.items[candidate].passive() {
			return candidate, true
		}
	}
	return index, false
}

func (f *Form[T]) changeActiveIndex(step int) tea.Cmd {
	if !f.focused || len(f.items) == 0 {
		return nil
	}
	next, ok := f.nextFocusable(f.activeIndex, step)
	if !ok || next == f.activeIndex {
		return nil
	}
	f.items[f.activeIndex].input.Blur()
	f.activeIndex = next
	cmd, keyMap := f.focusActive()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (f *Form[T]) focusActive() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, f.keyMap)
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if item.id == "" {
			continue
		}
		values[item.id] = item.input.Get()
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok && f.items[i].id != "" {
			f.items[i].input.Set(value)
		}
	}

	return nil
}

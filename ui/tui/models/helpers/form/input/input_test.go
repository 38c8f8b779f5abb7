// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/connprompt/ui/tui/models/helpers/form"
)

func TestPassword_MasksInput(t *testing.T) {
	p := NewPassword()
	p.Focus()
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hunter2")})

	if p.Get() != "hunter2" {
		t.Fatalf("expected value to be stored, got %v", p.Get())
	}
	if out := p.View(40); strings.Contains(out, "hunter2") {
		t.Fatalf("password must not be rendered in clear text: %q", out)
	}
	if _, action := p.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNext {
		t.Fatalf("enter should advance, got %v", action)
	}
}

func TestCheckbox_ToggleAndDisabled(t *testing.T) {
	c := NewCheckbox("Save Password", false)
	c.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !c.Checked() {
		t.Fatalf("space should toggle the checkbox")
	}
	if !strings.Contains(c.View(40), "[x]") {
		t.Fatalf("checked box should render [x]: %q", c.View(40))
	}

	if _, action := c.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNext {
		t.Fatalf("enter should move on from the checkbox, got %v", action)
	}
	if _, action := c.Update(tea.WindowSizeMsg{Width: 10}); action != form.ActionNone || !c.Checked() {
		t.Fatalf("non key messages must be ignored")
	}

	d := NewCheckbox("Save Password", true)
	d.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if d.Checked() {
		t.Fatalf("disabled checkbox must not toggle")
	}
	if !d.Passive() {
		t.Fatalf("disabled checkbox must be passive")
	}
}

func TestButton_ReportsAction(t *testing.T) {
	b := NewButton("OK", form.ActionSubmit)
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionSubmit {
		t.Fatalf("expected submit action, got %v", action)
	}
	b.Disabled = true
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNone {
		t.Fatalf("disabled button must not act, got %v", action)
	}
}

func TestPassword_ViewKeepsWidth(t *testing.T) {
	p := NewPassword()
	p.View(40)
	if p.Width() != 0 {
		t.Fatalf("View must not change the input width, got %d", p.Width())
	}
	p.SetWidth(40)
	if p.Width() != 36 {
		t.Fatalf("expected input width 36, got %d", p.Width())
	}
	p.View(80)
	if p.Width() != 36 {
		t.Fatalf("View changed the input width to %d", p.Width())
	}
}

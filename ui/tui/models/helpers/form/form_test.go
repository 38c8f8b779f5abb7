// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package form_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/connprompt/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/connprompt/ui/tui/models/helpers/form/input"
)

type credentials struct {
	Secret   string `mapstructure:"secret"`
	Remember bool   `mapstructure:"remember"`
}

type recorder struct {
	submitted []credentials
	cancelled int
}

func newTestForm(r *recorder, rememberDisabled bool) form.Form[credentials] {
	return form.New(
		form.WithInput[credentials]("", forminput.NewStatic("header", lipgloss.NewStyle())),
		form.WithInput[credentials]("secret", forminput.NewPassword()),
		form.WithInput[credentials]("remember", forminput.NewCheckbox("Remember", rememberDisabled)),
		form.WithRow[credentials](
			forminput.NewButton("Cancel", form.ActionCancel),
			forminput.NewButton("OK", form.ActionSubmit),
		),
		form.WithOnSubmit(func(result credentials, err error) tea.Cmd {
			if err == nil {
				r.submitted = append(r.submitted, result)
			}
			return nil
		}),
		form.WithOnCancel[credentials](func() tea.Cmd {
			r.cancelled++
			return nil
		}),
	)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(f form.Form[credentials], keys ...string) form.Form[credentials] {
	for _, k := range keys {
		f, _ = f.Update(key(k))
	}
	return f
}

func TestForm_FocusSkipsPassiveInputs(t *testing.T) {
	var r recorder
	f := newTestForm(&r, false)
	f.Focus()
	if f.ActiveIndex() != 1 {
		t.Fatalf("expected first focusable input (1), got %d", f.ActiveIndex())
	}

	f = send(f, "tab", "tab", "tab")
	if f.ActiveIndex() != 4 {
		t.Fatalf("expected OK button (4), got %d", f.ActiveIndex())
	}
	// wraps around and skips the static header
	f = send(f, "tab")
	if f.ActiveIndex() != 1 {
		t.Fatalf("expected wrap to password (1), got %d", f.ActiveIndex())
	}
	f = send(f, "shift+tab")
	if f.ActiveIndex() != 4 {
		t.Fatalf("expected reverse wrap to OK (4), got %d", f.ActiveIndex())
	}
}

func TestForm_DisabledCheckboxIsSkipped(t *testing.T) {
	var r recorder
	f := newTestForm(&r, true)
	f.Focus()
	f = send(f, "tab")
	if f.ActiveIndex() != 3 {
		t.Fatalf("expected Cancel button (3) after skipping disabled checkbox, got %d", f.ActiveIndex())
	}
}

func TestForm_SubmitDecodesValues(t *testing.T) {
	var r recorder
	f := newTestForm(&r, false)
	f.Focus()

	f = send(f, "s3cr3t", "enter", " ", "tab", "tab", "enter")
	if len(r.submitted) != 1 {
		t.Fatalf("expected one submit, got %d", len(r.submitted))
	}
	got := r.submitted[0]
	if got.Secret != "s3cr3t" || !got.Remember {
		t.Fatalf("unexpected decoded values %+v", got)
	}
}

func TestForm_EscCancels(t *testing.T) {
	var r recorder
	f := newTestForm(&r, false)
	f.Focus()
	send(f, "esc")
	if r.cancelled != 1 || len(r.submitted) != 0 {
		t.Fatalf("expected one cancel and no submit, got cancel=%d submit=%d", r.cancelled, len(r.submitted))
	}
}

func TestForm_IgnoresInputWhenBlurred(t *testing.T) {
	var r recorder
	f := newTestForm(&r, false)
	f = send(f, "abc", "esc")
	got, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Secret != "" || r.cancelled != 0 {
		t.Fatalf("blurred form must ignore keys, got %+v cancel=%d", got, r.cancelled)
	}
}

func TestForm_SetAndReset(t *testing.T) {
	var r recorder
	f := newTestForm(&r, false)
	if err := f.Set(credentials{Secret: "x", Remember: true}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := f.Get()
	if got.Secret != "x" || !got.Remember {
		t.Fatalf("Set not applied: %+v", got)
	}
	f.Reset()
	got, _ = f.Get()
	if got != (credentials{}) {
		t.Fatalf("Reset left values behind: %+v", got)
	}
}

func TestForm_SetWidthResizesInputs(t *testing.T) {
	single := forminput.NewPassword()
	left := forminput.NewPassword()
	right := forminput.NewPassword()
	f := form.New(
		form.WithInput[credentials]("secret", single),
		form.WithRow[credentials](left, right),
	)

	f.SetWidth(60)
	if single.Width() != 56 {
		t.Fatalf("expected full row input width 56, got %d", single.Width())
	}
	if left.Width() != 26 || right.Width() != 26 {
		t.Fatalf("expected half row input widths 26, got %d and %d", left.Width(), right.Width())
	}

	f, _ = f.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if single.Width() != 36 {
		t.Fatalf("window size should resize inputs, got %d", single.Width())
	}
	f.View()
	if single.Width() != 36 {
		t.Fatalf("View must not resize inputs, got %d", single.Width())
	}
}

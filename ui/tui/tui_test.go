// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/connprompt/core/prompt"
	"github.com/toeirei/connprompt/internal/i18n"
	"github.com/toeirei/connprompt/ui/tui/models/views/root"
)

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// exec runs cmd and gives up on commands that block, like cursor blinking.
func exec(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(50 * time.Millisecond):
		return nil, false
	}
}

// drive feeds cmd and everything it produces back into m, the way a
// tea.Program would, and reports whether the program asked to quit.
func drive(t *testing.T, m tea.Model, cmd tea.Cmd) (tea.Model, bool) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 500 {
			t.Fatalf("command queue did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg, ok := exec(c)
		if !ok || msg == nil {
			continue
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			return m, true
		}
		// batches and sequences are slices of commands
		if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
			for i := 0; i < v.Len(); i++ {
				sub, _ := v.Index(i).Interface().(tea.Cmd)
				queue = append(queue, sub)
			}
			continue
		}
		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, next)
	}
	return m, false
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func start(t *testing.T, data *prompt.PromptData) (tea.Model, *Result) {
	t.Helper()
	i18n.Init("en")
	res := &Result{}
	var m tea.Model = NewModel(data, res)
	m, quit := drive(t, m, m.Init())
	if quit {
		t.Fatalf("program quit during init")
	}
	m, _ = drive(t, m, func() tea.Msg { return tea.WindowSizeMsg{Width: 100, Height: 30} })
	return m, res
}

func press(t *testing.T, m tea.Model, keys ...string) (tea.Model, bool) {
	t.Helper()
	var quit bool
	for _, k := range keys {
		msg := keyMsg(k)
		m, quit = drive(t, m, func() tea.Msg { return msg })
		if quit {
			return m, true
		}
	}
	return m, false
}

func TestRun_OKSubmitsAndQuits(t *testing.T) {
	data := &prompt.PromptData{
		PromptPassword:    true,
		Username:          "alice",
		ServerLabel:       "prod",
		AllowSavePassword: true,
	}
	m, res := start(t, data)

	if got := m.(*root.Model).Popups(); got != 1 {
		t.Fatalf("expected dialog to be open, popups=%d", got)
	}
	if title := m.(*root.Model).Title(); title != "connprompt | prod" {
		t.Fatalf("unexpected title %q", title)
	}

	// password, save checkbox, Cancel, OK
	m, quit := press(t, m, "secret", "tab", "space", "tab", "tab", "enter")
	if !quit {
		t.Fatalf("expected program to quit after OK")
	}
	if !res.Submitted {
		t.Fatalf("expected result to be submitted")
	}
	if v, _ := res.Payload.Get(prompt.KeyPassword); v != "secret" {
		t.Fatalf("unexpected password %q", v)
	}
	if v, _ := res.Payload.Get(prompt.KeySavePassword); v != "true" {
		t.Fatalf("expected save_password=true, got %q", v)
	}
	if got := m.(*root.Model).Popups(); got != 0 {
		t.Fatalf("expected dialog to be closed, popups=%d", got)
	}
}

func TestRun_CancelQuitsWithoutPayload(t *testing.T) {
	m, res := start(t, &prompt.PromptData{PromptPassword: true, ServerLabel: "prod"})

	_, quit := press(t, m, "secret", "esc")
	if !quit {
		t.Fatalf("expected program to quit after cancel")
	}
	if res.Submitted || res.Payload.Len() != 0 {
		t.Fatalf("cancel must not submit, got %+v", res)
	}
}

func TestRun_CtrlCQuits(t *testing.T) {
	m, res := start(t, nil)

	if !strings.Contains(m.View(), "No data") {
		t.Fatalf("expected placeholder in view")
	}
	_, quit := press(t, m, "ctrl+c")
	if !quit || res.Submitted {
		t.Fatalf("expected quit without submit, quit=%t res=%+v", quit, res)
	}
}

func TestRun_ViewShowsDialogAndFooter(t *testing.T) {
	m, _ := start(t, &prompt.PromptData{PromptTunnelPassword: true, TunnelUsername: "bob", TunnelHost: "jump"})

	out := m.View()
	for _, want := range []string{"connprompt", "'bob'", "ctrl+c"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view misses %q:\n%s", want, out)
		}
	}
}

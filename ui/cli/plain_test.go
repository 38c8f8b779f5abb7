// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/connprompt/core/prompt"
	"github.com/toeirei/connprompt/internal/i18n"
)

func TestPlainPrompter_BothSections(t *testing.T) {
	i18n.Init("en")
	var out bytes.Buffer
	p := NewPlainPrompter(strings.NewReader("tunnelpw\ny\ndbpw\nn\n"), &out)

	payload, err := p.Prompt(prompt.PromptData{
		PromptTunnelPassword:    true,
		TunnelUsername:          "bob",
		TunnelHost:              "jump",
		PromptPassword:          true,
		Username:                "alice",
		ServerLabel:             "prod",
		ErrMsg:                  "Authentication failed",
		AllowSaveTunnelPassword: true,
		AllowSavePassword:       true,
	})
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}

	if v, _ := payload.Get(prompt.KeyTunnelPassword); v != "tunnelpw" {
		t.Fatalf("unexpected tunnel password %q", v)
	}
	if v, _ := payload.Get(prompt.KeySaveTunnelPassword); v != "true" {
		t.Fatalf("expected save_tunnel_password=true, got %q", v)
	}
	if v, _ := payload.Get(prompt.KeyPassword); v != "dbpw" {
		t.Fatalf("unexpected password %q", v)
	}
	if payload.Has(prompt.KeySavePassword) {
		t.Fatalf("save_password must be omitted when declined")
	}

	text := out.String()
	if !strings.HasPrefix(text, "Authentication failed\n") {
		t.Fatalf("error message must come first:\n%s", text)
	}
	for _, want := range []string{"'bob'", "'alice'", "SSH Tunnel Password: ", "Save Password? [y/N] "} {
		if !strings.Contains(text, want) {
			t.Fatalf("output misses %q:\n%s", want, text)
		}
	}
}

func TestPlainPrompter_SaveNotAllowedSkipsQuestion(t *testing.T) {
	i18n.Init("en")
	var out bytes.Buffer
	p := NewPlainPrompter(strings.NewReader("dbpw"), &out)

	payload, err := p.Prompt(prompt.PromptData{PromptPassword: true, ServerLabel: "prod"})
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if strings.Contains(out.String(), "Save Password?") {
		t.Fatalf("save question must not be asked:\n%s", out.String())
	}
	if payload.Len() != 1 {
		t.Fatalf("expected only the password, got %+v", payload.Fields())
	}
}

func TestPlainPrompter_EOFCancels(t *testing.T) {
	i18n.Init("en")
	p := NewPlainPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Prompt(prompt.PromptData{PromptPassword: true})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestPlainPrompter_UsesPasswordReader(t *testing.T) {
	i18n.Init("en")
	p := NewPlainPrompter(strings.NewReader(""), &bytes.Buffer{})
	p.readPassword = func() ([]byte, error) { return []byte("hidden"), nil }

	payload, err := p.Prompt(prompt.PromptData{PromptPassword: true})
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if v, _ := payload.Get(prompt.KeyPassword); v != "hidden" {
		t.Fatalf("unexpected password %q", v)
	}
}

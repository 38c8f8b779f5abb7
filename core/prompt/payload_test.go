// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import (
	"testing"
)

func TestBuildPayload_NoPromptsIsEmpty(t *testing.T) {
	data := PromptData{ServerLabel: "db1", AllowSavePassword: true, AllowSaveTunnelPassword: true}
	states := []FormState{
		{},
		{Password: "x", SavePassword: true},
		{TunnelPassword: "y", SaveTunnelPassword: true, Password: "x", SavePassword: true},
	}
	for _, s := range states {
		if p := BuildPayload(data, s); p.Len() != 0 {
			t.Fatalf("expected empty payload for %+v, got %v", s, p.Fields())
		}
	}
}

func TestBuildPayload_PasswordAlwaysPresent(t *testing.T) {
	data := PromptData{PromptPassword: true, ServerLabel: "db1", AllowSavePassword: true}

	p := BuildPayload(data, FormState{})
	if v, ok := p.Get(KeyPassword); !ok || v != "" {
		t.Fatalf("expected empty password entry, got %q ok=%v", v, ok)
	}
	if p.Has(KeySavePassword) {
		t.Fatalf("save_password must be omitted when unchecked")
	}

	p = BuildPayload(data, FormState{Password: "secret", SavePassword: true})
	if v, _ := p.Get(KeySavePassword); v != "true" {
		t.Fatalf("expected save_password=true, got %q", v)
	}
}

func TestBuildPayload_SaveFlagRequiresPermission(t *testing.T) {
	data := PromptData{PromptPassword: true, PromptTunnelPassword: true}
	p := BuildPayload(data, FormState{Password: "a", SavePassword: true, TunnelPassword: "b", SaveTunnelPassword: true})
	if p.Has(KeySavePassword) || p.Has(KeySaveTunnelPassword) {
		t.Fatalf("save flags must be dropped when saving is not allowed: %v", p.Fields())
	}
}

func TestBuildPayload_FieldsAreIndependentAndOrdered(t *testing.T) {
	data := PromptData{
		PromptTunnelPassword:    true,
		PromptPassword:          true,
		AllowSaveTunnelPassword: true,
		AllowSavePassword:       true,
	}
	p := BuildPayload(data, FormState{TunnelPassword: "tun", SaveTunnelPassword: true, Password: "pw"})

	want := []Field{
		{KeyTunnelPassword, "tun"},
		{KeySaveTunnelPassword, "true"},
		{KeyPassword, "pw"},
	}
	got := p.Fields()
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildPayload_Scenario(t *testing.T) {
	data := PromptData{PromptPassword: true, Username: "alice", ServerLabel: "db1", AllowSavePassword: true}
	p := BuildPayload(data, FormState{Password: "secret", SavePassword: true})

	if got := p.Values().Encode(); got != "password=secret&save_password=true" {
		t.Fatalf("unexpected payload %q", got)
	}
	if p.Has(KeyTunnelPassword) {
		t.Fatalf("tunnel_password must not be present")
	}
}

func TestPayload_StringRedactsPasswords(t *testing.T) {
	data := PromptData{PromptTunnelPassword: true, PromptPassword: true, AllowSavePassword: true}
	p := BuildPayload(data, FormState{TunnelPassword: "tun", Password: "secret", SavePassword: true})

	got := p.String()
	if got != "tunnel_password=[SECRET] password=[SECRET] save_password=true" {
		t.Fatalf("unexpected string %q", got)
	}
}

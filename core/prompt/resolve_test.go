// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"os"
	"path/filepath"
	"testing"

	cryptossh "github.com/toeirei/connprompt/core/crypto/ssh"
	"github.com/toeirei/connprompt/core/model"
)

func writeKey(t *testing.T, passphrase string) string {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	block, err := cryptossh.MarshalPrivateKey(priv, "test", passphrase)
	if err != nil {
		t.Fatalf("marshal key: %v", err)
	}
	path := filepath.Join(t.TempDir(), "id_ed25519")
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	return path
}

func TestResolve_PlainServer(t *testing.T) {
	srv := model.Server{Name: "db1", Host: "db1.local", Port: 5432, Username: "alice"}
	data, err := Resolve(srv, ResolveOptions{AllowSavePassword: true, ErrMsg: "bad password"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !data.PromptPassword || data.PromptTunnelPassword {
		t.Fatalf("unexpected prompt flags: %+v", data)
	}
	if data.ServerLabel != "db1" || data.Username != "alice" || data.ErrMsg != "bad password" || !data.AllowSavePassword {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestResolve_PassFileSkipsPassword(t *testing.T) {
	data, err := Resolve(model.Server{Name: "db1", PassFile: "~/.pgpass"}, ResolveOptions{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if data.PromptPassword {
		t.Fatalf("password must not be prompted when a passfile is configured")
	}
}

func TestResolve_LabelFallsBackToHost(t *testing.T) {
	data, _ := Resolve(model.Server{Host: "10.0.0.5"}, ResolveOptions{})
	if data.ServerLabel != "10.0.0.5" {
		t.Fatalf("expected host as label, got %q", data.ServerLabel)
	}
}

func TestResolve_PasswordTunnel(t *testing.T) {
	srv := model.Server{Name: "db1", UseTunnel: true, TunnelHost: "bastion", TunnelUsername: "ops", TunnelAuth: model.TunnelAuthPassword}
	data, err := Resolve(srv, ResolveOptions{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !data.PromptTunnelPassword || data.TunnelHost != "bastion" || data.TunnelUsername != "ops" {
		t.Fatalf("unexpected tunnel data: %+v", data)
	}
}

func TestResolve_IdentityTunnel(t *testing.T) {
	encrypted := writeKey(t, "hunter2")
	plain := writeKey(t, "")

	srv := model.Server{Name: "db1", UseTunnel: true, TunnelHost: "bastion", TunnelAuth: model.TunnelAuthIdentity, TunnelIdentityFile: encrypted}
	data, err := Resolve(srv, ResolveOptions{})
	if err != nil {
		t.Fatalf("Resolve encrypted: %v", err)
	}
	if !data.PromptTunnelPassword || data.TunnelIdentityFile != encrypted {
		t.Fatalf("expected tunnel prompt for encrypted key: %+v", data)
	}

	srv.TunnelIdentityFile = plain
	data, err = Resolve(srv, ResolveOptions{})
	if err != nil {
		t.Fatalf("Resolve plain: %v", err)
	}
	if data.PromptTunnelPassword {
		t.Fatalf("unencrypted key must not prompt for a tunnel password")
	}
}

func TestResolve_IdentityFileErrors(t *testing.T) {
	srv := model.Server{UseTunnel: true, TunnelAuth: model.TunnelAuthIdentity, TunnelIdentityFile: filepath.Join(t.TempDir(), "missing")}
	if _, err := Resolve(srv, ResolveOptions{}); !errors.Is(err, ErrIdentityFile) {
		t.Fatalf("expected ErrIdentityFile for missing file, got %v", err)
	}

	garbage := filepath.Join(t.TempDir(), "garbage")
	_ = os.WriteFile(garbage, []byte("not a key"), 0o600)
	srv.TunnelIdentityFile = garbage
	if _, err := Resolve(srv, ResolveOptions{}); !errors.Is(err, ErrIdentityFile) {
		t.Fatalf("expected ErrIdentityFile for garbage file, got %v", err)
	}
}

func TestResolve_UnknownTunnelAuth(t *testing.T) {
	if _, err := Resolve(model.Server{UseTunnel: true, TunnelAuth: "kerberos"}, ResolveOptions{}); err == nil {
		t.Fatalf("expected error for unsupported tunnel auth")
	}
}

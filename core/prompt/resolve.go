// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cryptossh "github.com/toeirei/connprompt/core/crypto/ssh"
	"github.com/toeirei/connprompt/core/model"
)

// ErrIdentityFile is returned when a tunnel identity file cannot be inspected.
var ErrIdentityFile = errors.New("cannot read tunnel identity file")

// ResolveOptions carries caller policy that is not part of a server record.
type ResolveOptions struct {
	AllowSavePassword       bool
	AllowSaveTunnelPassword bool
	// ErrMsg is shown in the dialog's error banner, typically the reason a
	// previous attempt failed.
	ErrMsg string
}

// Resolve decides which credentials have to be asked for srv.
//
// A password is asked unless the server uses a password file. A tunnel
// password is asked for password-authenticated tunnels and for identity files
// protected by a passphrase.
func Resolve(srv model.Server, opts ResolveOptions) (PromptData, error) {
	data := PromptData{
		PromptPassword:          srv.PassFile == "",
		Username:                srv.Username,
		ServerLabel:             srv.Name,
		ErrMsg:                  opts.ErrMsg,
		AllowSavePassword:       opts.AllowSavePassword,
		AllowSaveTunnelPassword: opts.AllowSaveTunnelPassword,
	}
	if data.ServerLabel == "" {
		data.ServerLabel = srv.Host
	}
	if !srv.UseTunnel {
		return data, nil
	}

	data.TunnelHost = srv.TunnelHost
	data.TunnelUsername = srv.TunnelUsername

	switch srv.TunnelAuth {
	case model.TunnelAuthIdentity:
		data.TunnelIdentityFile = srv.TunnelIdentityFile
		encrypted, err := identityNeedsPassphrase(srv.TunnelIdentityFile)
		if err != nil {
			return PromptData{}, err
		}
		data.PromptTunnelPassword = encrypted
	case model.TunnelAuthPassword, "":
		data.PromptTunnelPassword = true
	default:
		return PromptData{}, fmt.Errorf("unsupported tunnel authentication %q", srv.TunnelAuth)
	}
	return data, nil
}

// identityNeedsPassphrase reports whether the private key at path is encrypted.
func identityNeedsPassphrase(path string) (bool, error) {
	raw, err := os.ReadFile(expandHome(path))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrIdentityFile, err)
	}
	encrypted, err := cryptossh.IsEncrypted(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrIdentityFile, err)
	}
	return encrypted, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import "github.com/toeirei/connprompt/internal/i18n"

// TunnelMessage returns the instruction shown above the SSH tunnel password
// field. Servers using an identity file name the file, others the tunnel user.
func TunnelMessage(data PromptData) string {
	if data.TunnelIdentityFile != "" {
		return i18n.T("connect.tunnel_password_identity", map[string]any{
			"IdentityFile": data.TunnelIdentityFile,
			"TunnelHost":   data.TunnelHost,
		})
	}
	return i18n.T("connect.tunnel_password_user", map[string]any{
		"TunnelUsername": data.TunnelUsername,
		"TunnelHost":     data.TunnelHost,
	})
}

// PasswordMessage returns the instruction shown above the server password field.
func PasswordMessage(data PromptData) string {
	if data.Username != "" {
		return i18n.T("connect.password_user", map[string]any{
			"Username":    data.Username,
			"ServerLabel": data.ServerLabel,
		})
	}
	return i18n.T("connect.password", map[string]any{
		"ServerLabel": data.ServerLabel,
	})
}

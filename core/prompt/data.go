// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

// PromptData describes which credentials a dialog must collect for a server.
// It is owned by the caller and never modified by a dialog.
type PromptData struct {
	PromptTunnelPassword bool   `json:"prompt_tunnel_password" yaml:"prompt_tunnel_password" mapstructure:"prompt_tunnel_password"`
	PromptPassword       bool   `json:"prompt_password" yaml:"prompt_password" mapstructure:"prompt_password"`
	TunnelIdentityFile   string `json:"tunnel_identity_file,omitempty" yaml:"tunnel_identity_file,omitempty" mapstructure:"tunnel_identity_file"`
	TunnelHost           string `json:"tunnel_host,omitempty" yaml:"tunnel_host,omitempty" mapstructure:"tunnel_host"`
	TunnelUsername       string `json:"tunnel_username,omitempty" yaml:"tunnel_username,omitempty" mapstructure:"tunnel_username"`
	Username             string `json:"username,omitempty" yaml:"username,omitempty" mapstructure:"username"`
	ServerLabel          string `json:"server_label" yaml:"server_label" mapstructure:"server_label"`
	ErrMsg               string `json:"errmsg,omitempty" yaml:"errmsg,omitempty" mapstructure:"errmsg"`

	AllowSaveTunnelPassword bool `json:"allow_save_tunnel_password" yaml:"allow_save_tunnel_password" mapstructure:"allow_save_tunnel_password"`
	AllowSavePassword       bool `json:"allow_save_password" yaml:"allow_save_password" mapstructure:"allow_save_password"`
}

// FormState holds the values a dialog collects. The zero value is the state
// of a freshly opened dialog.
type FormState struct {
	TunnelPassword     string `mapstructure:"tunnel_password"`
	SaveTunnelPassword bool   `mapstructure:"save_tunnel_password"`
	Password           string `mapstructure:"password"`
	SavePassword       bool   `mapstructure:"save_password"`
}

// Payload keys.
const (
	KeyTunnelPassword     = "tunnel_password"
	KeySaveTunnelPassword = "save_tunnel_password"
	KeyPassword           = "password"
	KeySavePassword       = "save_password"
)

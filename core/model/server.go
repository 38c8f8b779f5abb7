// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// Tunnel authentication methods.
const (
	TunnelAuthPassword = "password"
	TunnelAuthIdentity = "identity"
)

// Server is a registered database server. Credentials are never part of it.
type Server struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	// PassFile points to a pgpass-style file; when set no password is asked.
	PassFile string `json:"passfile,omitempty" yaml:"passfile,omitempty"`

	UseTunnel          bool   `json:"use_tunnel" yaml:"use_tunnel"`
	TunnelHost         string `json:"tunnel_host,omitempty" yaml:"tunnel_host,omitempty"`
	TunnelPort         int    `json:"tunnel_port,omitempty" yaml:"tunnel_port,omitempty"`
	TunnelUsername     string `json:"tunnel_username,omitempty" yaml:"tunnel_username,omitempty"`
	TunnelAuth         string `json:"tunnel_auth,omitempty" yaml:"tunnel_auth,omitempty"`
	TunnelIdentityFile string `json:"tunnel_identity_file,omitempty" yaml:"tunnel_identity_file,omitempty"`
}

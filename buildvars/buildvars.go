// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via `-ldflags -X github.com/toeirei/connprompt/buildvars.Version=...`.
// It is empty for local builds.
var Version string

// Commit is the VCS revision, also set at link time.
var Commit string

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}

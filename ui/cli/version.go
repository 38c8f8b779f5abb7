// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/connprompt/buildvars"
)

const modulePath = "github.com/toeirei/connprompt"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func versionString(v, c, d string) string {
	s := v
	if c != "" && c != "dev" && c != v {
		s += " (" + c + ")"
	}
	if d != "" {
		s += " built: " + d
	}
	return s
}

// resolveBuildVersion computes the best-available version, commit and build
// date. Link time values win; build info fills the gaps. If info is nil it is
// read from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (version, commit, date string) {
	version = buildvars.VersionOrDefault("dev")
	commit = buildvars.Commit
	if commit == "" {
		commit = "dev"
	}

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info == nil {
		return version, commit, date
	}

	if version == "dev" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		} else {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					version = dep.Version
					break
				}
			}
		}
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" && commit == "dev" {
				commit = s.Value
			}
		case "vcs.time":
			date = s.Value
		}
	}
	return version, commit, date
}

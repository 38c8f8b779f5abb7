// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for connprompt using Cobra.
// The root command asks for the credentials of one registered server and
// prints them in the requested format; the servers subcommands manage the
// registry.
package cli

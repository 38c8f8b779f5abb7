// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Command connprompt asks for the passwords needed to connect to a
// registered database server.
//
// Usage:
//
//	connprompt [server] [flags]
//	connprompt servers list|add|remove
//
// The answers are written to stdout; cancelling exits with status 1.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/toeirei/connprompt/internal/i18n"
	"github.com/toeirei/connprompt/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrCancelled) {
			fmt.Fprintln(os.Stderr, i18n.T("connect.cancelled"))
		} else {
			fmt.Fprintf(os.Stderr, "connprompt: %v\n", err)
		}
		os.Exit(1)
	}
}

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the connect-server dialog as a full screen terminal
// program. Presentation and input handling live here; deciding what to ask
// for is done by core/prompt.
package tui

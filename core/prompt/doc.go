// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prompt contains the UI-independent part of the connect-server
// prompt: the data the caller hands to a dialog, the form state a dialog
// collects, the submission payload built from both, and the wording of the
// prompt messages. Nothing here renders or reads from a terminal.
package prompt

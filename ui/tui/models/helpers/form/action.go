// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package form

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionSubmit
	ActionCancel
)

type Action int

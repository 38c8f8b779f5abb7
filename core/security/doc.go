// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package security provides a small wrapper for passwords held in memory so
// they are redacted whenever they are formatted, logged or serialised.
package security

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the core data models used across connprompt. These are
// simple structs that represent registry entities and are intentionally
// minimal to keep serialization and DB adapters straightforward.
package model

// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db is the registry of database servers connprompt knows how to ask
// credentials for. It is backed by bun and works on SQLite, PostgreSQL and
// MySQL. Only connection metadata is stored, never passwords.
package db

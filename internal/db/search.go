// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"strings"

	"github.com/toeirei/connprompt/core/model"
	"github.com/toeirei/connprompt/util/slicest"
)

// TokenizeSearchQuery splits a query into lower-cased tokens.
// Returns nil for empty input.
func TokenizeSearchQuery(q string) []string {
	parts := strings.Fields(q)
	if len(parts) == 0 {
		return nil
	}
	return slicest.Map(parts, strings.ToLower)
}

// FilterServersByTokens returns the servers matching all tokens. Matching is
// case-insensitive substring containment on name, host and username.
func FilterServersByTokens(servers []model.Server, tokens []string) []model.Server {
	if len(tokens) == 0 {
		return servers
	}
	return slicest.Filter(servers, func(s model.Server) bool {
		name := strings.ToLower(s.Name)
		host := strings.ToLower(s.Host)
		user := strings.ToLower(s.Username)
		for _, tok := range tokens {
			if !strings.Contains(name, tok) && !strings.Contains(host, tok) && !strings.Contains(user, tok) {
				return false
			}
		}
		return true
	})
}

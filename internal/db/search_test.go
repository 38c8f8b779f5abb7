// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"testing"

	"github.com/toeirei/connprompt/core/model"
)

func TestTokenizeSearchQuery(t *testing.T) {
	if got := TokenizeSearchQuery("   "); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	got := TokenizeSearchQuery("  Prod  DB ")
	if len(got) != 2 || got[0] != "prod" || got[1] != "db" {
		t.Fatalf("unexpected tokens %v", got)
	}
}

func TestFilterServersByTokens(t *testing.T) {
	servers := []model.Server{
		{Name: "prod", Host: "db1.example.com", Username: "alice"},
		{Name: "staging", Host: "db2.example.com", Username: "bob"},
		{Name: "dev", Host: "localhost", Username: "alice"},
	}

	if got := FilterServersByTokens(servers, nil); len(got) != 3 {
		t.Fatalf("expected all servers without tokens, got %d", len(got))
	}
	got := FilterServersByTokens(servers, TokenizeSearchQuery("ALICE example"))
	if len(got) != 1 || got[0].Name != "prod" {
		t.Fatalf("expected [prod], got %+v", got)
	}
	if got := FilterServersByTokens(servers, []string{"nothing"}); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

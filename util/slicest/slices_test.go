// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"slices"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestMapI(t *testing.T) {
	got := MapI([]string{"a", "b"}, func(i int, s string) string { return s + strconv.Itoa(i) })
	if !slices.Equal(got, []string{"a0", "b1"}) {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	if !slices.Equal(got, []int{2, 4}) {
		t.Fatalf("unexpected result %v", got)
	}
	if got := Filter([]int(nil), func(int) bool { return true }); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

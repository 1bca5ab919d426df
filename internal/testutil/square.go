// Package testutil provides shared test utilities for the chess-rules-go
// project. These helpers reduce duplication across test files and keep test
// setup consistent.
package testutil

import (
	"testing"

	"github.com/kwalsh/chess-rules-go/internal/chess"
)

// MustParseSquare parses an algebraic square name and returns the canonical
// square. It calls t.Fatal on malformed input; use it in test setup where a
// bad coordinate should abort the test.
func MustParseSquare(t *testing.T, name string) *chess.Square {
	t.Helper()
	s, err := chess.Parse(name)
	if err != nil {
		t.Fatalf("failed to parse square %q: %v", name, err)
	}
	return s
}

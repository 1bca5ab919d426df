// Package chess provides the coordinate model for geometric move legality:
// colours, files, ranks, canonical squares and compass directions.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnOffset returns +1 for White, -1 for Black (the rank direction in
// which the colour's pawns advance). Used only when wiring pieces.
func (c Colour) PawnOffset() int {
	if c == White {
		return 1
	}
	return -1
}

// ParseColour converts a colour name ("white", "Black", ...) to a Colour.
func ParseColour(name string) (Colour, error) {
	switch strings.ToLower(name) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return 0, fmt.Errorf("unknown colour %q", name)
}

// MoveType indicates the intent of a proposed move.
type MoveType int

const (
	// Quiet is a non-capturing move.
	Quiet MoveType = iota
	// Capture is a capturing move.
	Capture
)

// String returns the string representation of a move type.
func (mt MoveType) String() string {
	if mt == Capture {
		return "Capture"
	}
	return "Quiet"
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'

	FirstRank Rank = RankBase
	LastRank  Rank = RankBase + BoardSize - 1
	FirstCol  Col  = ColBase
	LastCol   Col  = ColBase + BoardSize - 1
)

// Valid reports whether the rank lies on the board.
func (r Rank) Valid() bool {
	return r >= FirstRank && r <= LastRank
}

// Valid reports whether the column lies on the board.
func (c Col) Valid() bool {
	return c >= FirstCol && c <= LastCol
}

// Index converts a rank character to a 0-based board index.
// The rank must be valid.
func (r Rank) Index() int {
	return int(r - RankBase)
}

// Index converts a column character to a 0-based board index.
// The column must be valid.
func (c Col) Index() int {
	return int(c - ColBase)
}

// String returns the rank as its digit, e.g. "4".
func (r Rank) String() string {
	return string(rune(r))
}

// String returns the column as its letter, e.g. "e".
func (c Col) String() string {
	return string(rune(c))
}

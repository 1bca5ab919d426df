package chess

import (
	"fmt"

	"github.com/kwalsh/chess-rules-go/internal/errors"
)

// Square is one board cell, identified by a (column, rank) pair. Squares are
// canonical: exactly one instance exists per coordinate pair for the lifetime
// of the process, so pointer comparison is a valid equality check. Squares
// are immutable after package initialisation.
type Square struct {
	col  Col
	rank Rank
}

// squares holds the 64 canonical instances, indexed [col][rank]. The table is
// fully populated by init, before any other goroutine can exist, so lookups
// never race.
var squares [BoardSize][BoardSize]Square

func init() {
	for col := FirstCol; col <= LastCol; col++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			squares[col.Index()][rank.Index()] = Square{col: col, rank: rank}
		}
	}
}

// Of returns the canonical square for the given column and rank.
// It fails with ErrInvalidSquare if either coordinate is off the board.
func Of(col Col, rank Rank) (*Square, error) {
	if !col.Valid() || !rank.Valid() {
		return nil, &errors.SquareError{
			Err:  errors.ErrInvalidSquare,
			Col:  byte(col),
			Rank: byte(rank),
		}
	}
	return &squares[col.Index()][rank.Index()], nil
}

// MustSquare returns the canonical square for a known-good coordinate pair.
// It panics on off-board input; use it only for fixed literals.
func MustSquare(col Col, rank Rank) *Square {
	s, err := Of(col, rank)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse returns the canonical square for a two-character code: a file letter
// 'a'-'h' (case-insensitive) followed by a rank digit '1'-'8'. Any other
// input fails with ErrInvalidSquare.
func Parse(name string) (*Square, error) {
	if len(name) != 2 {
		return nil, &errors.SquareError{Err: errors.ErrInvalidSquare, Input: name}
	}

	col := Col(name[0])
	if col >= 'A' && col <= 'Z' {
		col += 'a' - 'A'
	}
	rank := Rank(name[1])

	if !col.Valid() || !rank.Valid() {
		return nil, &errors.SquareError{Err: errors.ErrInvalidSquare, Input: name}
	}
	return &squares[col.Index()][rank.Index()], nil
}

// Col returns the square's column.
func (s *Square) Col() Col {
	return s.col
}

// Rank returns the square's rank.
func (s *Square) Rank() Rank {
	return s.rank
}

// String returns the square in algebraic form, e.g. "e4".
func (s *Square) String() string {
	return fmt.Sprintf("%c%c", byte(s.col), byte(s.rank))
}

// AllSquares returns the 64 canonical squares in column-major order
// (a1, a2, ..., h8).
func AllSquares() []*Square {
	all := make([]*Square, 0, BoardSize*BoardSize)
	for col := FirstCol; col <= LastCol; col++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			all = append(all, &squares[col.Index()][rank.Index()])
		}
	}
	return all
}

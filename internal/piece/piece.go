// Package piece builds the concrete chess pieces by pairing a colour with a
// movement rule and a fixed material value. All pieces are immutable after
// construction; rule selection happens exactly once, here, so no code ever
// dispatches on piece kind or colour at query time.
package piece

import (
	"fmt"
	"strings"

	"github.com/kwalsh/chess-rules-go/internal/chess"
	"github.com/kwalsh/chess-rules-go/internal/movement"
)

// Kind identifies a piece's type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the name of the kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of the kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a kind name ("queen", "Knight", ...) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "pawn":
		return Pawn, nil
	case "knight":
		return Knight, nil
	case "bishop":
		return Bishop, nil
	case "rook":
		return Rook, nil
	case "queen":
		return Queen, nil
	case "king":
		return King, nil
	}
	return 0, fmt.Errorf("unknown piece kind %q", name)
}

// Piece is a single chess piece: a colour, a movement rule and a fixed point
// value. Pieces are immutable; a rule change such as promotion is modelled
// by replacing the piece, never by mutating it.
type Piece struct {
	colour chess.Colour
	kind   Kind
	rule   movement.Movable
	value  int
}

// Movable reports whether the piece may geometrically move from one square
// to another with the given intent. It delegates directly to the piece's
// movement rule and is safe for unrestricted concurrent use.
func (p *Piece) Movable(from, to *chess.Square, mt chess.MoveType) bool {
	return p.rule.Movable(from, to, mt)
}

// PointValue returns the piece's fixed material value.
func (p *Piece) PointValue() int {
	return p.value
}

// Colour returns the piece's colour.
func (p *Piece) Colour() chess.Colour {
	return p.colour
}

// Kind returns the piece's kind.
func (p *Piece) Kind() Kind {
	return p.kind
}

// String returns e.g. "White Queen".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v", p.colour, p.kind)
}

// Letter returns the FEN-style letter: uppercase for White, lowercase for
// Black.
func (p *Piece) Letter() byte {
	l := p.kind.Letter()
	if p.colour == chess.Black {
		l += 'a' - 'A'
	}
	return l
}

// mustRule panics if a fixed piece configuration fails to build. The tables
// below are compile-time constants, so this only fires if one of them is
// edited into invalidity.
func mustRule(m movement.Movable, err error) movement.Movable {
	if err != nil {
		panic(err)
	}
	return m
}

// NewKing returns a king: one step in any of the 8 directions, value 0.
func NewKing(c chess.Colour) *Piece {
	return &Piece{
		colour: c,
		kind:   King,
		rule:   mustRule(movement.NewStep(1, chess.AllDirections...)),
		value:  0,
	}
}

// NewQueen returns a queen: unlimited slide in all 8 directions, value 9.
func NewQueen(c chess.Colour) *Piece {
	return &Piece{
		colour: c,
		kind:   Queen,
		rule:   mustRule(movement.NewSlide(chess.AllDirections...)),
		value:  9,
	}
}

// NewRook returns a rook: unlimited slide along ranks and files, value 5.
func NewRook(c chess.Colour) *Piece {
	return &Piece{
		colour: c,
		kind:   Rook,
		rule:   mustRule(movement.NewSlide(chess.OrthogonalDirections...)),
		value:  5,
	}
}

// NewBishop returns a bishop: unlimited slide along diagonals, value 3.
func NewBishop(c chess.Colour) *Piece {
	return &Piece{
		colour: c,
		kind:   Bishop,
		rule:   mustRule(movement.NewSlide(chess.DiagonalDirections...)),
		value:  3,
	}
}

// NewKnight returns a knight: the 8 L-shaped leaps, value 3.
func NewKnight(c chess.Colour) *Piece {
	return &Piece{
		colour: c,
		kind:   Knight,
		rule:   mustRule(movement.NewLeap(movement.KnightOffsets...)),
		value:  3,
	}
}

// NewPawn returns a pawn for the given colour. The two colours are distinct
// configurations, each hard-wiring its own advance direction, attack
// diagonals and start rank; the colour is inspected here, once, and never
// again at query time.
func NewPawn(c chess.Colour) *Piece {
	if c == chess.White {
		return newWhitePawn()
	}
	return newBlackPawn()
}

func newWhitePawn() *Piece {
	return &Piece{
		colour: chess.White,
		kind:   Pawn,
		rule: mustRule(movement.NewPawn(
			chess.North,
			[]chess.Direction{chess.NorthEast, chess.NorthWest},
			'2',
		)),
		value: 1,
	}
}

func newBlackPawn() *Piece {
	return &Piece{
		colour: chess.Black,
		kind:   Pawn,
		rule: mustRule(movement.NewPawn(
			chess.South,
			[]chess.Direction{chess.SouthEast, chess.SouthWest},
			'7',
		)),
		value: 1,
	}
}

// New returns a piece of the given kind and colour. It is a convenience for
// callers, such as the CLI, that select the kind at runtime.
func New(k Kind, c chess.Colour) (*Piece, error) {
	switch k {
	case Pawn:
		return NewPawn(c), nil
	case Knight:
		return NewKnight(c), nil
	case Bishop:
		return NewBishop(c), nil
	case Rook:
		return NewRook(c), nil
	case Queen:
		return NewQueen(c), nil
	case King:
		return NewKing(c), nil
	}
	return nil, fmt.Errorf("unknown piece kind %d", k)
}

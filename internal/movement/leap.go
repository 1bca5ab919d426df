package movement

import (
	"github.com/kwalsh/chess-rules-go/internal/chess"
	"github.com/kwalsh/chess-rules-go/internal/errors"
)

// Offset is a discrete (column, rank) displacement for leaping pieces.
// Unlike a Direction it is not a unit vector and is never repeated.
type Offset struct {
	Col  int
	Rank int
}

// KnightOffsets are the 8 L-shaped knight displacements: one component is
// one square, the other two.
var KnightOffsets = []Offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Leap is a discrete offset rule: the target is reachable iff the
// displacement equals exactly one configured offset. An L-shaped jump is not
// expressible as direction plus distance, so it is its own variant. It
// covers the knight.
type Leap struct {
	offsets []Offset
}

// NewLeap builds a leaping rule over the given offsets.
// It fails with ErrInvalidRule if no offsets are given.
func NewLeap(offsets ...Offset) (*Leap, error) {
	if len(offsets) == 0 {
		return nil, &errors.RuleError{
			Err:    errors.ErrInvalidRule,
			Rule:   "leap",
			Reason: "no offsets configured",
		}
	}
	l := &Leap{offsets: make([]Offset, len(offsets))}
	copy(l.offsets, offsets)
	return l, nil
}

// Movable reports whether from -> to equals one of the configured offsets.
// The move type does not affect leaping geometry.
func (l *Leap) Movable(from, to *chess.Square, _ chess.MoveType) bool {
	dc, dr := chess.Delta(from, to)
	if dc == 0 && dr == 0 {
		return false
	}
	for _, o := range l.offsets {
		if dc == o.Col && dr == o.Rank {
			return true
		}
	}
	return false
}

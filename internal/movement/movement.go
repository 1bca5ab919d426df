// Package movement implements the geometric legality rules for chess pieces.
//
// A rule answers whether the displacement from one square to another matches
// its configured shape for a given move intent. Rules are occupancy-blind:
// whether other pieces block the path, or whether the target holds an enemy
// piece, is a board-level concern layered on top of this package. Every rule
// is immutable once constructed and safe for unrestricted concurrent use.
package movement

import (
	"github.com/kwalsh/chess-rules-go/internal/chess"
)

// Movable is the uniform contract for all movement rules. It reports whether
// the geometry of from -> to is legal for the given move type. Movable is a
// total function: once a rule is constructed it never fails.
type Movable interface {
	Movable(from, to *chess.Square, mt chess.MoveType) bool
}

// stepsAlong returns how many unit steps along direction d produce the
// displacement (dc, dr), or false if the displacement does not lie on d.
func stepsAlong(d chess.Direction, dc, dr int) (int, bool) {
	udc, udr := d.Delta()

	var n int
	if udc != 0 {
		n = dc / udc
	} else {
		n = dr / udr
	}
	if n < 1 {
		return 0, false
	}
	if n*udc != dc || n*udr != dr {
		return 0, false
	}
	return n, true
}

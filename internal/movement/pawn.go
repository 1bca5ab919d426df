package movement

import (
	"github.com/kwalsh/chess-rules-go/internal/chess"
	"github.com/kwalsh/chess-rules-go/internal/errors"
)

// Pawn is the asymmetric pawn rule: quiet moves advance one step in the
// single forward direction, or two steps when starting from the pawn's
// initial rank; captures move exactly one step along a forward diagonal.
//
// Whether the intervening square of a double advance is empty is a caller
// precondition checked by the board layer; this rule only answers geometry.
type Pawn struct {
	advance chess.Direction
	attacks []chess.Direction
	start   chess.Rank
}

// NewPawn builds a pawn rule from a forward direction, a set of capture
// directions and the rank from which a double advance is allowed. It fails
// with ErrInvalidRule if the attack set is empty or the start rank is off
// the board.
func NewPawn(advance chess.Direction, attacks []chess.Direction, start chess.Rank) (*Pawn, error) {
	if len(attacks) == 0 {
		return nil, &errors.RuleError{
			Err:    errors.ErrInvalidRule,
			Rule:   "pawn",
			Reason: "no attack directions configured",
		}
	}
	if !start.Valid() {
		return nil, &errors.RuleError{
			Err:    errors.ErrInvalidRule,
			Rule:   "pawn",
			Reason: "start rank off the board",
		}
	}
	p := &Pawn{
		advance: advance,
		attacks: make([]chess.Direction, len(attacks)),
		start:   start,
	}
	copy(p.attacks, attacks)
	return p, nil
}

// Movable reports whether from -> to is a legal pawn displacement for the
// given move type.
func (p *Pawn) Movable(from, to *chess.Square, mt chess.MoveType) bool {
	dc, dr := chess.Delta(from, to)

	if mt == chess.Capture {
		for _, d := range p.attacks {
			udc, udr := d.Delta()
			if dc == udc && dr == udr {
				return true
			}
		}
		return false
	}

	udc, udr := p.advance.Delta()
	if dc == udc && dr == udr {
		return true
	}
	// Double advance, only from the start rank.
	return from.Rank() == p.start && dc == 2*udc && dr == 2*udr
}

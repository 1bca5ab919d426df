package movement

import (
	"github.com/kwalsh/chess-rules-go/internal/chess"
	"github.com/kwalsh/chess-rules-go/internal/errors"
)

// Slide is an unlimited sliding rule: the target is reachable iff the
// displacement is a positive whole number of unit steps along exactly one of
// the configured directions. It covers rooks, bishops and queens.
type Slide struct {
	dirs []chess.Direction
}

// NewSlide builds a sliding rule over the given directions.
// It fails with ErrInvalidRule if no directions are given.
func NewSlide(dirs ...chess.Direction) (*Slide, error) {
	if len(dirs) == 0 {
		return nil, &errors.RuleError{
			Err:    errors.ErrInvalidRule,
			Rule:   "slide",
			Reason: "no directions configured",
		}
	}
	s := &Slide{dirs: make([]chess.Direction, len(dirs))}
	copy(s.dirs, dirs)
	return s, nil
}

// Movable reports whether from -> to lies along one of the configured
// directions. The move type does not affect sliding geometry.
func (s *Slide) Movable(from, to *chess.Square, _ chess.MoveType) bool {
	dc, dr := chess.Delta(from, to)
	if dc == 0 && dr == 0 {
		return false
	}
	for _, d := range s.dirs {
		if _, ok := stepsAlong(d, dc, dr); ok {
			return true
		}
	}
	return false
}

// Step is a bounded variant of Slide: the displacement must be between 1 and
// max unit steps along one of the configured directions. It covers the king
// (all 8 directions, max 1).
type Step struct {
	dirs []chess.Direction
	max  int
}

// NewStep builds a bounded stepping rule over the given directions.
// It fails with ErrInvalidRule if max < 1 or no directions are given.
func NewStep(max int, dirs ...chess.Direction) (*Step, error) {
	if max < 1 {
		return nil, &errors.RuleError{
			Err:    errors.ErrInvalidRule,
			Rule:   "step",
			Reason: "step limit must be at least 1",
		}
	}
	if len(dirs) == 0 {
		return nil, &errors.RuleError{
			Err:    errors.ErrInvalidRule,
			Rule:   "step",
			Reason: "no directions configured",
		}
	}
	s := &Step{dirs: make([]chess.Direction, len(dirs)), max: max}
	copy(s.dirs, dirs)
	return s, nil
}

// Movable reports whether from -> to lies along one of the configured
// directions within the step limit.
func (s *Step) Movable(from, to *chess.Square, _ chess.MoveType) bool {
	dc, dr := chess.Delta(from, to)
	if dc == 0 && dr == 0 {
		return false
	}
	for _, d := range s.dirs {
		if n, ok := stepsAlong(d, dc, dr); ok && n <= s.max {
			return true
		}
	}
	return false
}

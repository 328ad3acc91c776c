package stepper

import (
	"fmt"

	"github.com/muurk/numedit/internal/numeric"
)

// Direction is the sense of a spinner action.
type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

// String returns "up" or "down".
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Outcome records what a bounded step did.
type Outcome int

const (
	// Applied means the candidate value was accepted.
	Applied Outcome = iota
	// NoOp means the delta was zero or unset.
	NoOp
	// RejectedAboveMax means stepping up would have passed the maximum.
	RejectedAboveMax
	// RejectedBelowMin means stepping down would have passed the minimum.
	RejectedBelowMin
)

// String returns a human-readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NoOp:
		return "no-op"
	case RejectedAboveMax:
		return "rejected: above maximum"
	case RejectedBelowMin:
		return "rejected: below minimum"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Rejected reports whether the step was refused by a bound.
func (o Outcome) Rejected() bool {
	return o == RejectedAboveMax || o == RejectedBelowMin
}

// Step adds delta to current and checks the result against the bound in the
// direction of travel only. A step that would cross the bound is refused as a
// whole and current is returned unchanged; the result is never clamped.
//
// A current value of None counts as zero. A zero or None delta leaves current
// untouched, None included.
func Step(current, delta numeric.Value, b numeric.Bounds) (numeric.Value, Outcome) {
	if delta.Sign() == 0 {
		return current, NoOp
	}

	candidate := current.Add(delta)
	if delta.Sign() > 0 && b.AboveMax(candidate) {
		return current, RejectedAboveMax
	}
	if delta.Sign() < 0 && b.BelowMin(candidate) {
		return current, RejectedBelowMin
	}
	return candidate, Applied
}

// Increment steps current by one Increment of b in direction d.
func Increment(current numeric.Value, d Direction, b numeric.Bounds) (numeric.Value, Outcome) {
	delta := b.Increment
	if d == Down {
		delta = delta.Neg()
	}
	return Step(current, delta, b)
}

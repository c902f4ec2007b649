package sim

import "github.com/aretw0/finite/pkg/domain"

// Step records one position of a DFA walk.
//
// The first step of every trace is the initial state with no symbol and
// no transition. A step with a symbol but no transition marks a halted
// walk: the symbol had no outgoing transition from the current state.
type Step struct {
	// State is the state the walk is in after this step.
	State *domain.State

	// Position is the number of input symbols consumed so far.
	Position int

	// Symbol is the input symbol consumed by this step, or "" for the
	// initial step.
	Symbol string

	// Transition is the edge taken, nil for the initial step and for a
	// halted step.
	Transition *domain.Transition
}

// Halted reports whether this step recorded a missing transition.
func (s Step) Halted() bool {
	return s.Symbol != "" && s.Transition == nil
}

func (s Step) String() string {
	if s.Symbol == "" {
		return "initial: " + s.State.ID
	}
	if s.Halted() {
		return "halted at " + s.State.ID + " on '" + s.Symbol + "'"
	}
	return "'" + s.Symbol + "' -> " + s.State.ID
}

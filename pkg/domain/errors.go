package domain

import (
	"errors"
	"fmt"
)

// Rejected-operation errors. These mark a mutation or construction that
// the automaton refused; the aggregate is left untouched when they occur.
var (
	// ErrEmptyStateID is returned when a state is created without an ID.
	ErrEmptyStateID = errors.New("state id must not be empty")

	// ErrStateExists is returned when adding a state whose ID is taken.
	ErrStateExists = errors.New("state already exists")

	// ErrStateNotFound is returned when an operation references a state
	// ID that is not registered in the automaton.
	ErrStateNotFound = errors.New("state not found")

	// ErrTransitionExists is returned when adding a transition whose
	// (from, to, symbol) triple is already present.
	ErrTransitionExists = errors.New("transition already exists")

	// ErrTransitionNotFound is returned when removing an unknown transition.
	ErrTransitionNotFound = errors.New("transition not found")

	// ErrNoInitialState is returned by operations that require an
	// initial state (simulation, conversion) when none is set.
	ErrNoInitialState = errors.New("automaton has no initial state")

	// ErrNotDeterministic is returned when a deterministic automaton is
	// required but the transition relation is nondeterministic.
	ErrNotDeterministic = errors.New("automaton is not deterministic")
)

// DeterminismError reports the exact (state, symbol) pair that would
// break determinism in a DFA-mode automaton.
type DeterminismError struct {
	StateID string
	Symbol  string
}

func (e *DeterminismError) Error() string {
	if e.Symbol == Epsilon {
		return fmt.Sprintf("epsilon transition from %q not allowed in a deterministic automaton", e.StateID)
	}
	return fmt.Sprintf("duplicate transition from %q on symbol %q", e.StateID, e.Symbol)
}

func (e *DeterminismError) Unwrap() error { return ErrNotDeterministic }

package sim

import (
	"fmt"

	"github.com/aretw0/finite/pkg/domain"
)

// DFASimulator walks input strings through a deterministic automaton.
type DFASimulator struct {
	a *domain.Automaton
}

// NewDFASimulator validates that the automaton is deterministic and has
// an initial state.
func NewDFASimulator(a *domain.Automaton) (*DFASimulator, error) {
	if !a.IsDeterministic() {
		return nil, fmt.Errorf("dfa simulator: %w", domain.ErrNotDeterministic)
	}
	if a.Initial() == nil {
		return nil, fmt.Errorf("dfa simulator: %w", domain.ErrNoInitialState)
	}
	return &DFASimulator{a: a}, nil
}

// Automaton returns the automaton being simulated.
func (s *DFASimulator) Automaton() *domain.Automaton { return s.a }

// Simulate consumes the input one symbol at a time and returns the
// verdict together with the ordered step trace.
//
// Input symbols are validated against the alphabet before the walk
// starts; an out-of-alphabet symbol yields an *InputError and an empty
// trace. A symbol with no outgoing transition halts the walk: the string
// is rejected and the trailing step records the halt.
func (s *DFASimulator) Simulate(input string) (bool, []Step, error) {
	if err := validateInput(s.a, input); err != nil {
		return false, nil, err
	}

	current := s.a.Initial()
	steps := []Step{{State: current, Position: 0}}

	for i, r := range []rune(input) {
		symbol := string(r)
		t, ok := s.a.TransitionFromOn(current.ID, symbol)
		if !ok {
			steps = append(steps, Step{State: current, Position: i + 1, Symbol: symbol})
			return false, steps, nil
		}
		next, _ := s.a.StateByID(t.To)
		tr := t
		current = next
		steps = append(steps, Step{State: current, Position: i + 1, Symbol: symbol, Transition: &tr})
	}

	return s.a.IsFinal(current.ID), steps, nil
}

// IsAccepted reports whether the DFA accepts the input.
func (s *DFASimulator) IsAccepted(input string) (bool, error) {
	accepted, _, err := s.Simulate(input)
	return accepted, err
}

// Stepper creates a resumable simulation over the given input.
func (s *DFASimulator) Stepper(input string) (*DFAStepper, error) {
	if err := validateInput(s.a, input); err != nil {
		return nil, err
	}
	st := &DFAStepper{sim: s, input: []rune(input)}
	st.Reset()
	return st, nil
}

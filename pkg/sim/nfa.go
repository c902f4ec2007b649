package sim

import (
	"fmt"

	"github.com/aretw0/finite/pkg/domain"
)

// NFASimulator tracks a set of configurations through the input, folding
// in the epsilon closure after every move.
type NFASimulator struct {
	a *domain.Automaton
}

// NewNFASimulator validates that the automaton has an initial state.
// Determinism is not required.
func NewNFASimulator(a *domain.Automaton) (*NFASimulator, error) {
	if a.Initial() == nil {
		return nil, fmt.Errorf("nfa simulator: %w", domain.ErrNoInitialState)
	}
	return &NFASimulator{a: a}, nil
}

// Automaton returns the automaton being simulated.
func (s *NFASimulator) Automaton() *domain.Automaton { return s.a }

// Simulate runs the NFA over the input and returns the verdict together
// with one configuration set per input position, 0..len(input).
//
// If no transition matches at some step the set becomes empty and stays
// empty; the walk has died, which is a normal reject, not an error.
func (s *NFASimulator) Simulate(input string) (bool, []ConfigurationSet, error) {
	if err := validateInput(s.a, input); err != nil {
		return false, nil, err
	}

	current := s.initialSet()
	sets := []ConfigurationSet{current}

	for i, r := range []rune(input) {
		current = s.advance(current, string(r), i+1)
		sets = append(sets, current)
	}

	return len(current.Accepting()) > 0, sets, nil
}

// IsAccepted reports whether the NFA accepts the input.
func (s *NFASimulator) IsAccepted(input string) (bool, error) {
	accepted, _, err := s.Simulate(input)
	return accepted, err
}

// AcceptingPaths returns the recorded path of every accepting
// configuration in the final set. There may be zero, one, or many paths:
// distinct parallel derivations are genuine NFA nondeterminism.
func (s *NFASimulator) AcceptingPaths(input string) ([][]domain.Transition, error) {
	accepted, sets, err := s.Simulate(input)
	if err != nil {
		return nil, err
	}
	if !accepted || len(sets) == 0 {
		return nil, nil
	}
	var paths [][]domain.Transition
	for _, c := range sets[len(sets)-1].Accepting() {
		paths = append(paths, c.Path)
	}
	return paths, nil
}

// Detail is a per-simulation report for debugging and display.
type Detail struct {
	Accepted            bool
	TotalSteps          int
	ConfigurationCounts []int
	StatesByStep        [][]string
	AcceptingPaths      [][]domain.Transition
	Deterministic       bool
}

// SimulateDetailed bundles the full simulation outcome into a Detail.
func (s *NFASimulator) SimulateDetailed(input string) (*Detail, error) {
	accepted, sets, err := s.Simulate(input)
	if err != nil {
		return nil, err
	}

	d := &Detail{
		Accepted:      accepted,
		TotalSteps:    len([]rune(input)),
		Deterministic: s.a.IsDeterministic(),
	}
	for _, set := range sets {
		d.ConfigurationCounts = append(d.ConfigurationCounts, len(set))
		d.StatesByStep = append(d.StatesByStep, set.StateIDs())
	}
	if accepted {
		for _, c := range sets[len(sets)-1].Accepting() {
			d.AcceptingPaths = append(d.AcceptingPaths, c.Path)
		}
	}
	return d, nil
}

// Stepper creates a resumable simulation over the given input.
func (s *NFASimulator) Stepper(input string) (*NFAStepper, error) {
	if err := validateInput(s.a, input); err != nil {
		return nil, err
	}
	st := &NFAStepper{sim: s, input: []rune(input)}
	st.Reset()
	return st, nil
}

// initialSet is the epsilon closure of the initial state, one position-0
// configuration per member.
func (s *NFASimulator) initialSet() ConfigurationSet {
	set := make(map[string]Configuration)
	for _, st := range ClosureOf(s.a, s.a.Initial()) {
		c := Configuration{State: st, Position: 0}
		set[c.key()] = c
	}
	return sortedSet(set)
}

// advance derives the next configuration set for one input symbol: every
// matching transition from every active configuration produces a
// candidate, then a single epsilon expansion over all candidates folds
// in the closure, propagating each candidate's path to the states it
// reaches.
func (s *NFASimulator) advance(current ConfigurationSet, symbol string, pos int) ConfigurationSet {
	next := make(map[string]Configuration)
	var frontier []Configuration

	for _, c := range current {
		for _, t := range s.a.TransitionsFrom(c.State.ID) {
			if !t.Matches(symbol) {
				continue
			}
			to, ok := s.a.StateByID(t.To)
			if !ok {
				continue
			}
			path := make([]domain.Transition, 0, len(c.Path)+1)
			path = append(path, c.Path...)
			path = append(path, t)
			nc := Configuration{State: to, Position: pos, Path: path}
			if _, seen := next[nc.key()]; seen {
				continue
			}
			next[nc.key()] = nc
			frontier = append(frontier, nc)
		}
	}

	for len(frontier) > 0 {
		c := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, t := range s.a.TransitionsFrom(c.State.ID) {
			if !t.IsEpsilon() {
				continue
			}
			to, ok := s.a.StateByID(t.To)
			if !ok {
				continue
			}
			nc := Configuration{State: to, Position: pos, Path: c.Path}
			if _, seen := next[nc.key()]; seen {
				continue
			}
			next[nc.key()] = nc
			frontier = append(frontier, nc)
		}
	}

	return sortedSet(next)
}

package subset

import (
	"fmt"

	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/sim"
)

// Result bundles the outcome of a conversion: the constructed DFA, the
// ordered step log, and the originating NFA state set of every DFA
// state. The mapping is carried forward from the algorithm itself, not
// recovered from labels.
type Result struct {
	DFA     *domain.Automaton
	Steps   []ConversionStep
	Mapping map[string]StateSet
}

// Convert builds an equivalent DFA from an NFA by treating every
// reachable set of NFA states as one DFA state.
//
// DFA state IDs are assigned in discovery order (q0, q1, ...), and the
// alphabet is iterated in sorted order, so the numbering is reproducible
// for a given NFA. Each DFA state's Label carries the rendering of its
// state set for display.
func Convert(nfa *domain.Automaton) (*Result, error) {
	if nfa.Initial() == nil {
		return nil, fmt.Errorf("subset construction: %w", domain.ErrNoInitialState)
	}

	dfa := domain.NewDFA()
	for _, symbol := range nfa.Alphabet() {
		dfa.AddSymbol(symbol)
	}

	res := &Result{DFA: dfa, Mapping: make(map[string]StateSet)}

	initialSet := NewStateSet(sim.ClosureOf(nfa, nfa.Initial()))
	initialState, err := res.allocate(initialSet)
	if err != nil {
		return nil, err
	}
	if err := dfa.SetInitial(initialState.ID); err != nil {
		return nil, err
	}

	bySet := map[string]*domain.State{initialSet.Key(): initialState}
	queue := []StateSet{initialSet}
	expanded := make(map[string]struct{})
	alphabet := nfa.Alphabet()

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, done := expanded[current.Key()]; done {
			continue
		}
		expanded[current.Key()] = struct{}{}
		currentState := bySet[current.Key()]

		for _, symbol := range alphabet {
			target := move(nfa, current, symbol)
			if target.Empty() {
				// Implicit reject: no DFA transition for this symbol.
				continue
			}

			targetState, exists := bySet[target.Key()]
			if !exists {
				targetState, err = res.allocate(target)
				if err != nil {
					return nil, err
				}
				bySet[target.Key()] = targetState
				queue = append(queue, target)
			}

			if err := dfa.AddTransition(domain.Transition{
				From:   currentState.ID,
				To:     targetState.ID,
				Symbol: symbol,
			}); err != nil {
				return nil, err
			}

			res.Steps = append(res.Steps, ConversionStep{
				Number:   len(res.Steps) + 1,
				Source:   current,
				Symbol:   symbol,
				Target:   target,
				NewState: !exists,
			})
		}
	}

	return res, nil
}

// allocate creates the DFA state for a newly discovered set, flags it
// final if the set contains an NFA final state, and records the mapping.
func (r *Result) allocate(set StateSet) (*domain.State, error) {
	id := fmt.Sprintf("q%d", len(r.Mapping))
	s, err := domain.NewState(id)
	if err != nil {
		return nil, err
	}
	s.Label = set.Label()
	s.Pos = domain.Position{X: 100 + float64(len(r.Mapping))*150, Y: 100}
	if err := r.DFA.AddState(s); err != nil {
		return nil, err
	}
	if set.ContainsFinal() {
		if err := r.DFA.AddFinal(id); err != nil {
			return nil, err
		}
	}
	r.Mapping[id] = set
	return s, nil
}

// move computes the set of NFA states reachable from any member of the
// set via the symbol, folded into its epsilon closure.
func move(nfa *domain.Automaton, set StateSet, symbol string) StateSet {
	var reached []*domain.State
	seen := make(map[string]struct{})
	for _, s := range set.States() {
		for _, t := range nfa.TransitionsFrom(s.ID) {
			if !t.Matches(symbol) {
				continue
			}
			if _, dup := seen[t.To]; dup {
				continue
			}
			if to, found := nfa.StateByID(t.To); found {
				seen[t.To] = struct{}{}
				reached = append(reached, to)
			}
		}
	}
	if len(reached) == 0 {
		return NewStateSet(nil)
	}
	return NewStateSet(sim.Closure(nfa, reached))
}

package domain

import (
	"fmt"
	"sort"
)

// Automaton aggregates states, transitions, an optional initial state, a
// set of final states and an alphabet.
//
// An automaton created with NewDFA rejects, at mutation time, any
// transition that would make the relation nondeterministic (a second
// transition from the same state on the same symbol, or any epsilon
// transition). An automaton created with NewNFA admits both.
type Automaton struct {
	deterministic bool

	states      map[string]*State
	transitions []Transition
	initialID   string
	finals      map[string]struct{}
	alphabet    map[string]struct{}
}

// NewDFA creates an empty automaton that enforces determinism on every
// transition added.
func NewDFA() *Automaton {
	a := newAutomaton()
	a.deterministic = true
	return a
}

// NewNFA creates an empty automaton that admits epsilon transitions and
// multiple transitions per (state, symbol) pair.
func NewNFA() *Automaton {
	return newAutomaton()
}

func newAutomaton() *Automaton {
	return &Automaton{
		states:   make(map[string]*State),
		finals:   make(map[string]struct{}),
		alphabet: make(map[string]struct{}),
	}
}

// RequiresDeterminism reports whether this automaton was created in DFA
// mode and enforces determinism on mutation.
func (a *Automaton) RequiresDeterminism() bool { return a.deterministic }

// AddState registers a new state. The ID must be unused.
func (a *Automaton) AddState(s *State) error {
	if s == nil || s.ID == "" {
		return ErrEmptyStateID
	}
	if _, ok := a.states[s.ID]; ok {
		return fmt.Errorf("state %q: %w", s.ID, ErrStateExists)
	}
	a.states[s.ID] = s
	if s.IsFinal {
		a.finals[s.ID] = struct{}{}
	}
	return nil
}

// RemoveState drops a state and cascades: every transition touching it is
// removed, and the initial/final references are cleared if they pointed
// at it.
func (a *Automaton) RemoveState(id string) error {
	if _, ok := a.states[id]; !ok {
		return fmt.Errorf("state %q: %w", id, ErrStateNotFound)
	}
	kept := a.transitions[:0]
	for _, t := range a.transitions {
		if t.From != id && t.To != id {
			kept = append(kept, t)
		}
	}
	a.transitions = kept
	if a.initialID == id {
		a.initialID = ""
	}
	delete(a.finals, id)
	delete(a.states, id)
	return nil
}

// AddTransition registers a transition. Both endpoints must already be
// states of the automaton; the exact triple must not be present yet. In
// DFA mode the transition must also preserve determinism. The symbol is
// added to the alphabet unless it is epsilon.
func (a *Automaton) AddTransition(t Transition) error {
	if _, ok := a.states[t.From]; !ok {
		return fmt.Errorf("transition source %q: %w", t.From, ErrStateNotFound)
	}
	if _, ok := a.states[t.To]; !ok {
		return fmt.Errorf("transition target %q: %w", t.To, ErrStateNotFound)
	}
	if a.deterministic {
		if t.IsEpsilon() {
			return &DeterminismError{StateID: t.From, Symbol: t.Symbol}
		}
		for _, existing := range a.transitions {
			if existing.From == t.From && existing.Symbol == t.Symbol {
				return &DeterminismError{StateID: t.From, Symbol: t.Symbol}
			}
		}
	}
	for _, existing := range a.transitions {
		if existing == t {
			return fmt.Errorf("%s: %w", t, ErrTransitionExists)
		}
	}
	a.transitions = append(a.transitions, t)
	if !t.IsEpsilon() {
		a.alphabet[t.Symbol] = struct{}{}
	}
	return nil
}

// RemoveTransition drops the exact (from, to, symbol) triple.
func (a *Automaton) RemoveTransition(t Transition) error {
	for i, existing := range a.transitions {
		if existing == t {
			a.transitions = append(a.transitions[:i], a.transitions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", t, ErrTransitionNotFound)
}

// AddSymbol registers an alphabet symbol that may not yet appear on any
// transition. Epsilon is never part of the alphabet.
func (a *Automaton) AddSymbol(symbol string) {
	if symbol == Epsilon {
		return
	}
	a.alphabet[symbol] = struct{}{}
}

// SetInitial marks an existing state as the initial state.
func (a *Automaton) SetInitial(id string) error {
	if _, ok := a.states[id]; !ok {
		return fmt.Errorf("initial state %q: %w", id, ErrStateNotFound)
	}
	a.initialID = id
	return nil
}

// ClearInitial unsets the initial state.
func (a *Automaton) ClearInitial() { a.initialID = "" }

// Initial returns the initial state, or nil if none is set.
func (a *Automaton) Initial() *State {
	if a.initialID == "" {
		return nil
	}
	return a.states[a.initialID]
}

// AddFinal marks an existing state as accepting.
func (a *Automaton) AddFinal(id string) error {
	s, ok := a.states[id]
	if !ok {
		return fmt.Errorf("final state %q: %w", id, ErrStateNotFound)
	}
	a.finals[id] = struct{}{}
	s.IsFinal = true
	return nil
}

// RemoveFinal unmarks a state as accepting. Unknown IDs are a no-op.
func (a *Automaton) RemoveFinal(id string) {
	delete(a.finals, id)
	if s, ok := a.states[id]; ok {
		s.IsFinal = false
	}
}

// IsFinal reports whether the state with the given ID is accepting.
func (a *Automaton) IsFinal(id string) bool {
	_, ok := a.finals[id]
	return ok
}

// StateByID looks up a state.
func (a *Automaton) StateByID(id string) (*State, bool) {
	s, ok := a.states[id]
	return s, ok
}

// States returns all states, sorted by ID.
func (a *Automaton) States() []*State {
	out := make([]*State, 0, len(a.states))
	for _, s := range a.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Finals returns all accepting states, sorted by ID.
func (a *Automaton) Finals() []*State {
	out := make([]*State, 0, len(a.finals))
	for id := range a.finals {
		out = append(out, a.states[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Transitions returns a copy of all transitions, sorted by
// (from, symbol, to) for stable iteration.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, len(a.transitions))
	copy(out, a.transitions)
	sortTransitions(out)
	return out
}

// TransitionsFrom returns all transitions leaving the given state.
func (a *Automaton) TransitionsFrom(id string) []Transition {
	var out []Transition
	for _, t := range a.transitions {
		if t.From == id {
			out = append(out, t)
		}
	}
	sortTransitions(out)
	return out
}

// TransitionsTo returns all transitions entering the given state.
func (a *Automaton) TransitionsTo(id string) []Transition {
	var out []Transition
	for _, t := range a.transitions {
		if t.To == id {
			out = append(out, t)
		}
	}
	sortTransitions(out)
	return out
}

// TransitionsOn returns all transitions labeled with the given symbol.
func (a *Automaton) TransitionsOn(symbol string) []Transition {
	var out []Transition
	for _, t := range a.transitions {
		if t.Symbol == symbol {
			out = append(out, t)
		}
	}
	sortTransitions(out)
	return out
}

// TransitionFromOn returns the transition leaving the given state on the
// given symbol. In a deterministic automaton there is at most one.
func (a *Automaton) TransitionFromOn(id, symbol string) (Transition, bool) {
	for _, t := range a.transitions {
		if t.From == id && t.Matches(symbol) {
			return t, true
		}
	}
	return Transition{}, false
}

// Alphabet returns the sorted alphabet. Epsilon is never included.
func (a *Automaton) Alphabet() []string {
	out := make([]string, 0, len(a.alphabet))
	for sym := range a.alphabet {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// InAlphabet reports whether the symbol belongs to the alphabet.
func (a *Automaton) InAlphabet(symbol string) bool {
	_, ok := a.alphabet[symbol]
	return ok
}

// StateCount returns the number of states.
func (a *Automaton) StateCount() int { return len(a.states) }

// TransitionCount returns the number of transitions.
func (a *Automaton) TransitionCount() int { return len(a.transitions) }

// EpsilonTransitionCount returns the number of epsilon transitions.
func (a *Automaton) EpsilonTransitionCount() int {
	n := 0
	for _, t := range a.transitions {
		if t.IsEpsilon() {
			n++
		}
	}
	return n
}

// IsDeterministic reports whether the transition relation is
// deterministic: no epsilon transitions and at most one transition per
// (state, symbol) pair. It inspects the current relation and is
// independent of the mode the automaton was created in.
func (a *Automaton) IsDeterministic() bool {
	seen := make(map[Transition]struct{}, len(a.transitions))
	for _, t := range a.transitions {
		if t.IsEpsilon() {
			return false
		}
		key := Transition{From: t.From, Symbol: t.Symbol}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// Validate checks the structural invariants wholesale: initial state and
// final states registered, transition endpoints registered, and (in DFA
// mode) determinism. Incremental mutation maintains these already;
// Validate exists for automata rebuilt from a serialized form.
func (a *Automaton) Validate() error {
	if a.initialID != "" {
		if _, ok := a.states[a.initialID]; !ok {
			return fmt.Errorf("initial state %q: %w", a.initialID, ErrStateNotFound)
		}
	}
	for id := range a.finals {
		if _, ok := a.states[id]; !ok {
			return fmt.Errorf("final state %q: %w", id, ErrStateNotFound)
		}
	}
	for _, t := range a.transitions {
		if _, ok := a.states[t.From]; !ok {
			return fmt.Errorf("transition source %q: %w", t.From, ErrStateNotFound)
		}
		if _, ok := a.states[t.To]; !ok {
			return fmt.Errorf("transition target %q: %w", t.To, ErrStateNotFound)
		}
	}
	if a.deterministic && !a.IsDeterministic() {
		return ErrNotDeterministic
	}
	return nil
}

func (a *Automaton) String() string {
	kind := "NFA"
	if a.deterministic {
		kind = "DFA"
	}
	return fmt.Sprintf("%s(states=%d, transitions=%d, alphabet=%v)",
		kind, len(a.states), len(a.transitions), a.Alphabet())
}

func sortTransitions(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].From != ts[j].From {
			return ts[i].From < ts[j].From
		}
		if ts[i].Symbol != ts[j].Symbol {
			return ts[i].Symbol < ts[j].Symbol
		}
		return ts[i].To < ts[j].To
	})
}

package domain

import "fmt"

// Epsilon is the distinguished symbol for transitions that consume no
// input. It is never a member of an automaton's alphabet.
const Epsilon = ""

// Transition is a directed edge between two states, identified by the
// triple (From, To, Symbol). It holds state IDs rather than state
// pointers; the owning Automaton resolves them.
type Transition struct {
	From   string
	To     string
	Symbol string
}

// IsEpsilon reports whether this transition consumes no input.
func (t Transition) IsEpsilon() bool {
	return t.Symbol == Epsilon
}

// Matches reports whether this transition fires on the given input
// symbol. Epsilon transitions never match a real symbol.
func (t Transition) Matches(symbol string) bool {
	return !t.IsEpsilon() && t.Symbol == symbol
}

func (t Transition) String() string {
	sym := t.Symbol
	if t.IsEpsilon() {
		sym = "ε"
	}
	return fmt.Sprintf("%s --%s--> %s", t.From, sym, t.To)
}

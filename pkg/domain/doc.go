/*
Package domain contains the core data model for finite automata.

It defines the fundamental entities shared by every algorithm in the
library: States, Transitions, and the Automaton aggregate that owns them.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - State: A single automaton state, identified by its ID alone.
  - Transition: A directed edge between two states, labeled with an input
    symbol or the epsilon marker.
  - Automaton: The aggregate of states, transitions, initial state, final
    states and alphabet, with structural invariants enforced on every
    mutation. A DFA-mode automaton additionally rejects any transition
    that would break determinism.

Mutations are all-or-nothing: an invalid add or remove is rejected before
any field is touched, so an Automaton is never observable in a
half-mutated state.
*/
package domain

package domain

// Position holds display coordinates for a state. It is carried through
// serialization for visual editors and ignored by every algorithm.
type Position struct {
	X float64
	Y float64
}

// State represents a single state in a finite automaton.
//
// Identity is the ID alone: two states with the same ID are the same state
// regardless of their flags. IsFinal, Label and Pos are mutable; the ID is
// fixed once the state is created.
type State struct {
	ID      string
	IsFinal bool

	// Label is an optional human-readable name, used for display only.
	// The subset-construction converter writes the originating state-set
	// rendering here; nothing in the library parses it back.
	Label string

	Pos Position
}

// NewState creates a state with the given ID.
func NewState(id string) (*State, error) {
	if id == "" {
		return nil, ErrEmptyStateID
	}
	return &State{ID: id}, nil
}

func (s *State) String() string {
	if s == nil {
		return "<nil>"
	}
	out := s.ID
	if s.Label != "" {
		out += " '" + s.Label + "'"
	}
	if s.IsFinal {
		out += " (final)"
	}
	return out
}

package dsl

import (
	"fmt"

	"github.com/aretw0/finite/pkg/domain"
)

// Builder accumulates states and transitions and assembles them into a
// domain.Automaton.
type Builder struct {
	deterministic bool
	order         []string
	states        map[string]*stateSpec
	transitions   []domain.Transition
	symbols       []string
	initialID     string
	current       *stateSpec
}

type stateSpec struct {
	id      string
	final   bool
	label   string
	pos     domain.Position
	builder *Builder
}

// DFA starts a builder for a deterministic automaton.
func DFA() *Builder {
	b := NFA()
	b.deterministic = true
	return b
}

// NFA starts a builder for a nondeterministic automaton.
func NFA() *Builder {
	return &Builder{states: make(map[string]*stateSpec)}
}

// State declares a state and makes it the target of the chained
// Initial/Final/Label/At calls. Declaring the same ID twice returns the
// existing state.
func (b *Builder) State(id string) *Builder {
	spec, ok := b.states[id]
	if !ok {
		spec = &stateSpec{id: id, builder: b}
		b.states[id] = spec
		b.order = append(b.order, id)
	}
	b.current = spec
	return b
}

// Initial marks the most recently declared state as the initial state.
func (b *Builder) Initial() *Builder {
	if b.current != nil {
		b.initialID = b.current.id
	}
	return b
}

// Final marks the most recently declared state as accepting.
func (b *Builder) Final() *Builder {
	if b.current != nil {
		b.current.final = true
	}
	return b
}

// Label sets the display label of the most recently declared state.
func (b *Builder) Label(label string) *Builder {
	if b.current != nil {
		b.current.label = label
	}
	return b
}

// At sets display coordinates of the most recently declared state.
func (b *Builder) At(x, y float64) *Builder {
	if b.current != nil {
		b.current.pos = domain.Position{X: x, Y: y}
	}
	return b
}

// Transition adds an edge. Undeclared endpoints are declared implicitly.
func (b *Builder) Transition(from, to, symbol string) *Builder {
	b.ensure(from)
	b.ensure(to)
	b.transitions = append(b.transitions, domain.Transition{From: from, To: to, Symbol: symbol})
	return b
}

// Epsilon adds an edge that consumes no input.
func (b *Builder) Epsilon(from, to string) *Builder {
	return b.Transition(from, to, domain.Epsilon)
}

// Symbol registers an alphabet symbol that appears on no transition.
func (b *Builder) Symbol(symbols ...string) *Builder {
	b.symbols = append(b.symbols, symbols...)
	return b
}

func (b *Builder) ensure(id string) {
	if _, ok := b.states[id]; !ok {
		b.states[id] = &stateSpec{id: id, builder: b}
		b.order = append(b.order, id)
	}
}

// Build assembles the automaton, reporting the first construction error
// encountered.
func (b *Builder) Build() (*domain.Automaton, error) {
	var a *domain.Automaton
	if b.deterministic {
		a = domain.NewDFA()
	} else {
		a = domain.NewNFA()
	}

	for _, id := range b.order {
		spec := b.states[id]
		s, err := domain.NewState(id)
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", id, err)
		}
		s.Label = spec.label
		s.Pos = spec.pos
		if err := a.AddState(s); err != nil {
			return nil, err
		}
		if spec.final {
			if err := a.AddFinal(id); err != nil {
				return nil, err
			}
		}
	}

	for _, t := range b.transitions {
		if err := a.AddTransition(t); err != nil {
			return nil, err
		}
	}

	for _, sym := range b.symbols {
		a.AddSymbol(sym)
	}

	if b.initialID != "" {
		if err := a.SetInitial(b.initialID); err != nil {
			return nil, err
		}
	}

	return a, nil
}

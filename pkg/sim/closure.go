package sim

import (
	"sort"

	"github.com/aretw0/finite/pkg/domain"
)

// Closure computes the epsilon closure of a set of states: every state
// reachable from the set using only epsilon transitions, including the
// set itself. A visited set guarantees termination on epsilon cycles, and
// the result is sorted by state ID so callers see a stable ordering.
//
// Closure is idempotent: Closure(Closure(S)) == Closure(S).
func Closure(a *domain.Automaton, states []*domain.State) []*domain.State {
	visited := make(map[string]*domain.State, len(states))
	stack := make([]*domain.State, 0, len(states))
	for _, s := range states {
		if _, ok := visited[s.ID]; ok {
			continue
		}
		visited[s.ID] = s
		stack = append(stack, s)
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range a.TransitionsFrom(current.ID) {
			if !t.IsEpsilon() {
				continue
			}
			if _, ok := visited[t.To]; ok {
				continue
			}
			to, ok := a.StateByID(t.To)
			if !ok {
				continue
			}
			visited[t.To] = to
			stack = append(stack, to)
		}
	}

	out := make([]*domain.State, 0, len(visited))
	for _, s := range visited {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ClosureOf computes the epsilon closure of a single state.
func ClosureOf(a *domain.Automaton, s *domain.State) []*domain.State {
	return Closure(a, []*domain.State{s})
}

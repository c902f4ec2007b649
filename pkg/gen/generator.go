// Package gen enumerates strings accepted by a deterministic automaton,
// shortest first. Work is bounded by explicit count and length limits
// rather than wall-clock time.
package gen

import (
	"fmt"
	"sort"

	"github.com/aretw0/finite/pkg/domain"
)

// Generator walks an automaton breadth-first so shorter accepted strings
// are always found before longer ones.
type Generator struct {
	a *domain.Automaton
}

// New validates that the automaton has an initial state.
func New(a *domain.Automaton) (*Generator, error) {
	if a.Initial() == nil {
		return nil, fmt.Errorf("string generator: %w", domain.ErrNoInitialState)
	}
	return &Generator{a: a}, nil
}

// Accepted returns up to maxCount accepted strings with at most
// maxLength symbols, ordered by length, then by the automaton's sorted
// transition order.
func (g *Generator) Accepted(maxCount, maxLength int) []string {
	if maxCount <= 0 {
		return nil
	}

	type item struct {
		state *domain.State
		text  string
	}

	var out []string
	seen := map[string]struct{}{}
	emitted := map[string]struct{}{}
	queue := []item{{state: g.a.Initial(), text: ""}}

	for len(queue) > 0 && len(out) < maxCount {
		cur := queue[0]
		queue = queue[1:]

		key := cur.state.ID + "\x1f" + cur.text
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if g.a.IsFinal(cur.state.ID) {
			if _, dup := emitted[cur.text]; !dup {
				emitted[cur.text] = struct{}{}
				out = append(out, cur.text)
				if len(out) >= maxCount {
					break
				}
			}
		}

		if len([]rune(cur.text)) >= maxLength {
			continue
		}
		for _, t := range g.a.TransitionsFrom(cur.state.ID) {
			if t.IsEpsilon() {
				continue
			}
			next, ok := g.a.StateByID(t.To)
			if !ok {
				continue
			}
			queue = append(queue, item{state: next, text: cur.text + t.Symbol})
		}
	}

	return out
}

// LengthGroup is the set of accepted strings of one length.
type LengthGroup struct {
	Length  int
	Strings []string
}

// ByLength groups the accepted strings by length, shortest group first.
func (g *Generator) ByLength(maxCount, maxLength int) []LengthGroup {
	byLen := map[int][]string{}
	for _, s := range g.Accepted(maxCount, maxLength) {
		n := len([]rune(s))
		byLen[n] = append(byLen[n], s)
	}

	lengths := make([]int, 0, len(byLen))
	for n := range byLen {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	out := make([]LengthGroup, 0, len(lengths))
	for _, n := range lengths {
		out = append(out, LengthGroup{Length: n, Strings: byLen[n]})
	}
	return out
}

// AcceptsEmpty reports whether the empty string is accepted.
func (g *Generator) AcceptsEmpty() bool {
	return g.a.IsFinal(g.a.Initial().ID)
}

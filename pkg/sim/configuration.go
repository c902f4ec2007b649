package sim

import (
	"fmt"
	"sort"

	"github.com/aretw0/finite/pkg/domain"
)

// Configuration is one active NFA state at an input position.
//
// Identity is (state, position) only: two paths that reach the same
// state at the same position collapse into one configuration, which is
// what bounds a configuration set by the state count rather than the
// path count. The path is carried for traceability.
type Configuration struct {
	State    *domain.State
	Position int
	Path     []domain.Transition
}

// Accepting reports whether the configuration sits in a final state.
func (c Configuration) Accepting() bool { return c.State.IsFinal }

func (c Configuration) String() string {
	return fmt.Sprintf("(%s, pos=%d)", c.State.ID, c.Position)
}

// key is the identity under which configurations are deduplicated.
func (c Configuration) key() string {
	return fmt.Sprintf("%s\x1f%d", c.State.ID, c.Position)
}

// ConfigurationSet is the set of configurations active at one input
// position, sorted by state ID.
type ConfigurationSet []Configuration

// States returns the distinct active states, sorted by ID.
func (cs ConfigurationSet) States() []*domain.State {
	seen := make(map[string]struct{}, len(cs))
	var out []*domain.State
	for _, c := range cs {
		if _, ok := seen[c.State.ID]; ok {
			continue
		}
		seen[c.State.ID] = struct{}{}
		out = append(out, c.State)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StateIDs returns the sorted IDs of the active states.
func (cs ConfigurationSet) StateIDs() []string {
	states := cs.States()
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.ID
	}
	return out
}

// Accepting returns the configurations sitting in a final state.
func (cs ConfigurationSet) Accepting() []Configuration {
	var out []Configuration
	for _, c := range cs {
		if c.Accepting() {
			out = append(out, c)
		}
	}
	return out
}

func sortedSet(m map[string]Configuration) ConfigurationSet {
	out := make(ConfigurationSet, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State.ID < out[j].State.ID })
	return out
}

package subset

import (
	"sort"
	"strings"

	"github.com/aretw0/finite/pkg/domain"
)

// EmptySetLabel is the rendering of the empty state set.
const EmptySetLabel = "∅"

// StateSet is a canonical, order-independent identity for a set of NFA
// states. Two StateSets are equal iff their member sets are equal,
// regardless of construction order.
type StateSet struct {
	states []*domain.State
	key    string
}

// NewStateSet builds a StateSet from the given states. Duplicates are
// folded; the member order does not matter.
func NewStateSet(states []*domain.State) StateSet {
	byID := make(map[string]*domain.State, len(states))
	for _, s := range states {
		byID[s.ID] = s
	}
	members := make([]*domain.State, 0, len(byID))
	for _, s := range byID {
		members = append(members, s)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })

	ids := make([]string, len(members))
	for i, s := range members {
		ids[i] = s.ID
	}
	// The key joins IDs with an unprintable separator so that IDs
	// containing commas or braces cannot collide.
	return StateSet{states: members, key: strings.Join(ids, "\x1f")}
}

// States returns the members sorted by ID.
func (s StateSet) States() []*domain.State {
	out := make([]*domain.State, len(s.states))
	copy(out, s.states)
	return out
}

// IDs returns the sorted member IDs.
func (s StateSet) IDs() []string {
	out := make([]string, len(s.states))
	for i, st := range s.states {
		out[i] = st.ID
	}
	return out
}

// Key is the canonical identity of the set, usable as a map key.
func (s StateSet) Key() string { return s.key }

// Equal reports whether both sets have the same members.
func (s StateSet) Equal(o StateSet) bool { return s.key == o.key }

// Empty reports whether the set has no members.
func (s StateSet) Empty() bool { return len(s.states) == 0 }

// Size returns the number of members.
func (s StateSet) Size() int { return len(s.states) }

// ContainsFinal reports whether any member is an accepting state.
func (s StateSet) ContainsFinal() bool {
	for _, st := range s.states {
		if st.IsFinal {
			return true
		}
	}
	return false
}

// Label renders the set for display: "{q0,q1}", or "∅" when empty. The
// label is presentation only; identity lives in Key.
func (s StateSet) Label() string {
	if s.Empty() {
		return EmptySetLabel
	}
	return "{" + strings.Join(s.IDs(), ",") + "}"
}

func (s StateSet) String() string { return s.Label() }

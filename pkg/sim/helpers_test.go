package sim_test

import (
	"testing"

	"github.com/aretw0/finite/pkg/domain"
	"github.com/stretchr/testify/require"
)

// buildNFA assembles an automaton without determinism checks.
// finals are flagged, initial is set, transitions are (from, to, symbol).
func buildNFA(t *testing.T, initial string, finals []string, transitions [][3]string) *domain.Automaton {
	t.Helper()
	a := domain.NewNFA()

	ids := map[string]struct{}{initial: {}}
	for _, f := range finals {
		ids[f] = struct{}{}
	}
	for _, tr := range transitions {
		ids[tr[0]] = struct{}{}
		ids[tr[1]] = struct{}{}
	}
	for id := range ids {
		s, err := domain.NewState(id)
		require.NoError(t, err)
		require.NoError(t, a.AddState(s))
	}
	for _, tr := range transitions {
		require.NoError(t, a.AddTransition(domain.Transition{From: tr[0], To: tr[1], Symbol: tr[2]}))
	}
	require.NoError(t, a.SetInitial(initial))
	for _, f := range finals {
		require.NoError(t, a.AddFinal(f))
	}
	return a
}

// endsInAB is a DFA over {a,b} accepting strings that end in "ab".
func endsInAB(t *testing.T) *domain.Automaton {
	t.Helper()
	return buildNFA(t, "q0", []string{"q2"}, [][3]string{
		{"q0", "q1", "a"},
		{"q0", "q0", "b"},
		{"q1", "q1", "a"},
		{"q1", "q2", "b"},
		{"q2", "q1", "a"},
		{"q2", "q0", "b"},
	})
}

// evenOnes accepts binary strings with an even number of 1s.
func evenOnes(t *testing.T) *domain.Automaton {
	t.Helper()
	return buildNFA(t, "even", []string{"even"}, [][3]string{
		{"even", "even", "0"},
		{"even", "odd", "1"},
		{"odd", "odd", "0"},
		{"odd", "even", "1"},
	})
}

// epsilonNFA has an epsilon edge q0->q1 next to a real edge q0->q1 on
// 'a', then q1->q2 on 'b', q2 final.
func epsilonNFA(t *testing.T) *domain.Automaton {
	t.Helper()
	return buildNFA(t, "q0", []string{"q2"}, [][3]string{
		{"q0", "q1", domain.Epsilon},
		{"q0", "q1", "a"},
		{"q1", "q2", "b"},
	})
}

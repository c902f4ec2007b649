package subset_test

import (
	"testing"

	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/sim"
	"github.com/aretw0/finite/pkg/subset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func epsilonNFA(t *testing.T) *domain.Automaton {
	t.Helper()
	return buildNFA(t, "q0", []string{"q2"}, [][3]string{
		{"q0", "q1", domain.Epsilon},
		{"q0", "q1", "a"},
		{"q1", "q2", "b"},
	})
}

func TestConvert_RequiresInitialState(t *testing.T) {
	a := buildNFA(t, "q0", nil, [][3]string{{"q0", "q1", "a"}})
	a.ClearInitial()
	_, err := subset.Convert(a)
	assert.ErrorIs(t, err, domain.ErrNoInitialState)
}

func TestConvert_EpsilonNFA(t *testing.T) {
	res, err := subset.Convert(epsilonNFA(t))
	require.NoError(t, err)

	t.Run("initial DFA state is the closure of q0", func(t *testing.T) {
		initial := res.DFA.Initial()
		require.NotNil(t, initial)
		assert.Equal(t, "q0", initial.ID)
		assert.Equal(t, []string{"q0", "q1"}, res.Mapping[initial.ID].IDs())
	})

	t.Run("result is a valid DFA", func(t *testing.T) {
		assert.True(t, res.DFA.IsDeterministic())
		assert.NoError(t, res.DFA.Validate())
	})

	t.Run("alphabet carried over", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, res.DFA.Alphabet())
	})

	t.Run("accepts the same strings", func(t *testing.T) {
		dfaSim, err := sim.NewDFASimulator(res.DFA)
		require.NoError(t, err)
		for input, want := range map[string]bool{
			"b":  true,
			"ab": true,
			"a":  false,
			"":   false,
		} {
			got, err := dfaSim.IsAccepted(input)
			require.NoError(t, err)
			assert.Equal(t, want, got, "input %q", input)
		}
	})

	t.Run("step log is ordered and numbered", func(t *testing.T) {
		require.NotEmpty(t, res.Steps)
		for i, step := range res.Steps {
			assert.Equal(t, i+1, step.Number)
		}
	})
}

func TestConvert_Reproducible(t *testing.T) {
	first, err := subset.Convert(epsilonNFA(t))
	require.NoError(t, err)
	second, err := subset.Convert(epsilonNFA(t))
	require.NoError(t, err)

	assert.Equal(t, idsOf(first.DFA), idsOf(second.DFA))
	assert.Equal(t, first.DFA.Transitions(), second.DFA.Transitions())
	require.Equal(t, len(first.Steps), len(second.Steps))
	for i := range first.Steps {
		assert.Equal(t, first.Steps[i].String(), second.Steps[i].String())
	}
}

func idsOf(a *domain.Automaton) []string {
	var out []string
	for _, s := range a.States() {
		out = append(out, s.ID)
	}
	return out
}

// allStrings enumerates every string over the alphabet up to maxLen.
func allStrings(alphabet []string, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, prefix := range frontier {
			for _, sym := range alphabet {
				next = append(next, prefix+sym)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func TestConvert_LanguageEquivalence(t *testing.T) {
	nfas := map[string]*domain.Automaton{
		"epsilon bridge": epsilonNFA(t),
		"branching": buildNFA(t, "q0", []string{"q3"}, [][3]string{
			{"q0", "q0", "a"},
			{"q0", "q0", "b"},
			{"q0", "q1", "a"},
			{"q1", "q2", "b"},
			{"q2", "q3", "a"},
		}),
		"epsilon cycle": buildNFA(t, "q0", []string{"q2"}, [][3]string{
			{"q0", "q1", domain.Epsilon},
			{"q1", "q0", domain.Epsilon},
			{"q1", "q2", "a"},
			{"q2", "q2", "b"},
		}),
	}

	for name, nfa := range nfas {
		t.Run(name, func(t *testing.T) {
			res, err := subset.Convert(nfa)
			require.NoError(t, err)
			require.True(t, res.DFA.IsDeterministic())

			equivalent, err := subset.VerifyEquivalence(nfa, res.DFA, allStrings(nfa.Alphabet(), 4))
			require.NoError(t, err)
			assert.True(t, equivalent)
		})
	}
}

func TestConvert_MappingMatchesLabels(t *testing.T) {
	res, err := subset.Convert(epsilonNFA(t))
	require.NoError(t, err)

	for _, s := range res.DFA.States() {
		set, ok := res.Mapping[s.ID]
		require.True(t, ok, "every DFA state has an origin set")
		assert.Equal(t, set.Label(), s.Label)
		assert.Equal(t, set.ContainsFinal(), s.IsFinal)
	}
}

func TestAnalyze(t *testing.T) {
	a, err := subset.Analyze(epsilonNFA(t))
	require.NoError(t, err)

	assert.Equal(t, 3, a.NFAStates)
	assert.Equal(t, 3, a.NFATransitions)
	assert.Equal(t, 1, a.EpsilonTransitions)
	assert.Equal(t, 2, a.AlphabetSize)
	assert.Positive(t, a.DFAStates)
	assert.InDelta(t, float64(a.DFAStates)/3.0, a.ExplosionRatio, 1e-9)
}

func TestVerifyEquivalence_DetectsDisagreement(t *testing.T) {
	nfa := epsilonNFA(t)

	// A DFA over the same alphabet that accepts everything.
	wrong := buildNFA(t, "s", []string{"s"}, [][3]string{
		{"s", "s", "a"},
		{"s", "s", "b"},
	})

	equivalent, err := subset.VerifyEquivalence(nfa, wrong, []string{"", "a", "b"})
	require.NoError(t, err)
	assert.False(t, equivalent)
}

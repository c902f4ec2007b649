package sim_test

import (
	"testing"

	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDFASimulator_Validation(t *testing.T) {
	t.Run("nondeterministic automaton rejected", func(t *testing.T) {
		a := epsilonNFA(t)
		_, err := sim.NewDFASimulator(a)
		assert.ErrorIs(t, err, domain.ErrNotDeterministic)
	})

	t.Run("missing initial state rejected", func(t *testing.T) {
		a := endsInAB(t)
		a.ClearInitial()
		_, err := sim.NewDFASimulator(a)
		assert.ErrorIs(t, err, domain.ErrNoInitialState)
	})
}

func TestDFASimulator_EndsInAB(t *testing.T) {
	s, err := sim.NewDFASimulator(endsInAB(t))
	require.NoError(t, err)

	tests := []struct {
		input    string
		accepted bool
	}{
		{"ab", true},
		{"aab", true},
		{"b", false},
		{"", false},
		{"aba", false},
		{"bbab", true},
	}
	for _, tt := range tests {
		accepted, steps, err := s.Simulate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.accepted, accepted, "input %q", tt.input)
		assert.Len(t, steps, len(tt.input)+1, "one step per position plus initial")
	}
}

func TestDFASimulator_EvenOnes(t *testing.T) {
	s, err := sim.NewDFASimulator(evenOnes(t))
	require.NoError(t, err)

	for input, want := range map[string]bool{
		"1001": true,
		"101":  true,
		"111":  false,
		"0":    true,
		"":     true,
		"1":    false,
	} {
		got, err := s.IsAccepted(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestDFASimulator_Deterministic(t *testing.T) {
	s, err := sim.NewDFASimulator(endsInAB(t))
	require.NoError(t, err)

	acc1, steps1, err := s.Simulate("abab")
	require.NoError(t, err)
	acc2, steps2, err := s.Simulate("abab")
	require.NoError(t, err)

	assert.Equal(t, acc1, acc2)
	assert.Equal(t, steps1, steps2, "repeated runs yield identical traces")
}

func TestDFASimulator_HaltsOnMissingTransition(t *testing.T) {
	// Partial DFA: no 'b' transition out of q0.
	a := buildNFA(t, "q0", []string{"q1"}, [][3]string{
		{"q0", "q1", "a"},
	})
	a.AddSymbol("b")

	s, err := sim.NewDFASimulator(a)
	require.NoError(t, err)

	accepted, steps, err := s.Simulate("ba")
	require.NoError(t, err)
	assert.False(t, accepted)
	require.Len(t, steps, 2, "initial step plus the halted step")

	last := steps[len(steps)-1]
	assert.True(t, last.Halted())
	assert.Equal(t, "q0", last.State.ID)
	assert.Equal(t, "b", last.Symbol)
}

func TestDFASimulator_InvalidInputSymbol(t *testing.T) {
	s, err := sim.NewDFASimulator(endsInAB(t))
	require.NoError(t, err)

	accepted, steps, err := s.Simulate("abca")
	assert.False(t, accepted)
	assert.Empty(t, steps, "no step executes on invalid input")

	var inputErr *sim.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "c", inputErr.Symbol)
	assert.Equal(t, 2, inputErr.Position)
}

func TestDFAStepper(t *testing.T) {
	s, err := sim.NewDFASimulator(endsInAB(t))
	require.NoError(t, err)

	st, err := s.Stepper("ab")
	require.NoError(t, err)

	t.Run("accepted before finish is an error", func(t *testing.T) {
		_, err := st.Accepted()
		assert.ErrorIs(t, err, sim.ErrSimulationRunning)
	})

	t.Run("steps consume one symbol each", func(t *testing.T) {
		assert.True(t, st.Step())
		assert.Equal(t, 1, st.Position())
		assert.Equal(t, "a", st.ProcessedInput())
		assert.Equal(t, "b", st.RemainingInput())
		assert.Equal(t, "q1", st.CurrentState().ID)

		assert.True(t, st.Step())
		assert.True(t, st.Finished())

		accepted, err := st.Accepted()
		require.NoError(t, err)
		assert.True(t, accepted)
	})

	t.Run("step after finish is a no-op", func(t *testing.T) {
		assert.False(t, st.Step())
	})

	t.Run("reset rewinds to the initial mode", func(t *testing.T) {
		st.Reset()
		assert.Equal(t, 0, st.Position())
		assert.False(t, st.Finished())
		assert.Equal(t, "q0", st.CurrentState().ID)
		assert.True(t, st.RunToCompletion())
	})
}

func TestDFAStepper_EmptyInput(t *testing.T) {
	s, err := sim.NewDFASimulator(evenOnes(t))
	require.NoError(t, err)

	st, err := s.Stepper("")
	require.NoError(t, err)

	assert.False(t, st.Step(), "empty input finishes immediately")
	accepted, err := st.Accepted()
	require.NoError(t, err)
	assert.True(t, accepted, "initial state is final")
}

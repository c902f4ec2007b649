package dsl_test

import (
	"testing"

	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/dsl"
	"github.com/aretw0/finite/pkg/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_NFA(t *testing.T) {
	a, err := dsl.NFA().
		State("q0").Initial().
		State("q1").Label("middle").At(120, 40).
		State("q2").Final().
		Transition("q0", "q1", "a").
		Epsilon("q0", "q1").
		Transition("q1", "q2", "b").
		Build()
	require.NoError(t, err)

	assert.Equal(t, 3, a.StateCount())
	assert.Equal(t, 3, a.TransitionCount())
	assert.Equal(t, "q0", a.Initial().ID)
	assert.True(t, a.IsFinal("q2"))

	mid, ok := a.StateByID("q1")
	require.True(t, ok)
	assert.Equal(t, "middle", mid.Label)
	assert.Equal(t, domain.Position{X: 120, Y: 40}, mid.Pos)

	s, err := sim.NewNFASimulator(a)
	require.NoError(t, err)
	accepted, err := s.IsAccepted("b")
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestBuilder_ImplicitStates(t *testing.T) {
	a, err := dsl.NFA().
		Transition("q0", "q1", "a").
		Build()
	require.NoError(t, err)
	assert.Equal(t, 2, a.StateCount())
}

func TestBuilder_DFARejectsNondeterminism(t *testing.T) {
	_, err := dsl.DFA().
		State("q0").Initial().
		Transition("q0", "q0", "a").
		Transition("q0", "q1", "a").
		Build()
	assert.ErrorIs(t, err, domain.ErrNotDeterministic)
}

func TestBuilder_ExtraSymbols(t *testing.T) {
	a, err := dsl.DFA().
		State("q0").Initial().Final().
		Transition("q0", "q0", "a").
		Symbol("b").
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, a.Alphabet())
}

func TestBuilder_RedeclaredStateKeepsIdentity(t *testing.T) {
	a, err := dsl.NFA().
		State("q0").
		State("q0").Final().Initial().
		Build()
	require.NoError(t, err)
	assert.Equal(t, 1, a.StateCount())
	assert.True(t, a.IsFinal("q0"))
}

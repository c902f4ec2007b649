package subset

import (
	"errors"

	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/sim"
)

// Analysis summarizes a conversion for display and diagnostics.
type Analysis struct {
	NFAStates          int `json:"nfa_states"`
	NFATransitions     int `json:"nfa_transitions"`
	EpsilonTransitions int `json:"epsilon_transitions"`
	DFAStates          int `json:"dfa_states"`
	DFATransitions     int `json:"dfa_transitions"`
	AlphabetSize       int `json:"alphabet_size"`
	StepsTaken         int `json:"steps_taken"`

	// ExplosionRatio is |DFA states| / |NFA states|.
	ExplosionRatio float64 `json:"explosion_ratio"`
}

// Analyze runs the conversion and returns its metrics.
func Analyze(nfa *domain.Automaton) (*Analysis, error) {
	res, err := Convert(nfa)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		NFAStates:          nfa.StateCount(),
		NFATransitions:     nfa.TransitionCount(),
		EpsilonTransitions: nfa.EpsilonTransitionCount(),
		DFAStates:          res.DFA.StateCount(),
		DFATransitions:     res.DFA.TransitionCount(),
		AlphabetSize:       len(nfa.Alphabet()),
		StepsTaken:         len(res.Steps),
	}
	if a.NFAStates > 0 {
		a.ExplosionRatio = float64(a.DFAStates) / float64(a.NFAStates)
	}
	return a, nil
}

// VerifyEquivalence runs both automata over every test string and
// requires identical accept/reject verdicts. A string outside one
// alphabet must be outside both; a one-sided input error counts as a
// disagreement.
func VerifyEquivalence(nfa, dfa *domain.Automaton, testStrings []string) (bool, error) {
	nfaSim, err := sim.NewNFASimulator(nfa)
	if err != nil {
		return false, err
	}
	dfaSim, err := sim.NewDFASimulator(dfa)
	if err != nil {
		return false, err
	}

	for _, input := range testStrings {
		nfaAccepted, nfaErr := nfaSim.IsAccepted(input)
		dfaAccepted, dfaErr := dfaSim.IsAccepted(input)

		var nfaInput, dfaInput *sim.InputError
		nfaInvalid := errors.As(nfaErr, &nfaInput)
		dfaInvalid := errors.As(dfaErr, &dfaInput)

		switch {
		case nfaInvalid && dfaInvalid:
			continue
		case nfaInvalid != dfaInvalid:
			return false, nil
		case nfaErr != nil:
			return false, nfaErr
		case dfaErr != nil:
			return false, dfaErr
		case nfaAccepted != dfaAccepted:
			return false, nil
		}
	}
	return true, nil
}

package sim

import (
	"errors"
	"fmt"

	"github.com/aretw0/finite/pkg/domain"
)

// ErrSimulationRunning is returned when acceptance is queried on a
// step-by-step simulation that has not finished yet.
var ErrSimulationRunning = errors.New("simulation has not finished")

// InputError reports an input symbol outside the automaton's alphabet.
// It is raised before any simulation step executes.
type InputError struct {
	Symbol   string
	Position int
	Alphabet []string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("symbol %q at position %d is not in the alphabet %v",
		e.Symbol, e.Position, e.Alphabet)
}

// validateInput checks every symbol of input against the alphabet.
func validateInput(a *domain.Automaton, input string) error {
	for i, r := range []rune(input) {
		sym := string(r)
		if !a.InAlphabet(sym) {
			return &InputError{Symbol: sym, Position: i, Alphabet: a.Alphabet()}
		}
	}
	return nil
}

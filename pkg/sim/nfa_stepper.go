package sim

import "github.com/aretw0/finite/pkg/domain"

// NFAStepper mirrors DFAStepper for nondeterministic automata: each step
// advances the whole configuration set by one symbol. An empty set keeps
// stepping normally and simply stays empty.
type NFAStepper struct {
	sim      *NFASimulator
	input    []rune
	pos      int
	sets     []ConfigurationSet
	finished bool
	accepted bool
}

// Step consumes one symbol. It returns true while the simulation is
// still running, false once the input is exhausted.
func (st *NFAStepper) Step() bool {
	if st.finished {
		return false
	}

	if st.pos >= len(st.input) {
		st.finish()
		return false
	}

	symbol := string(st.input[st.pos])
	st.pos++
	next := st.sim.advance(st.current(), symbol, st.pos)
	st.sets = append(st.sets, next)

	if st.pos >= len(st.input) {
		st.finish()
	}
	return true
}

func (st *NFAStepper) finish() {
	st.finished = true
	st.accepted = len(st.current().Accepting()) > 0
}

// RunToCompletion drives the simulation to the end of the input.
func (st *NFAStepper) RunToCompletion() bool {
	for !st.finished {
		st.Step()
	}
	return st.accepted
}

// Reset returns the stepper to position 0 over the same input.
func (st *NFAStepper) Reset() {
	st.pos = 0
	st.sets = []ConfigurationSet{st.sim.initialSet()}
	st.finished = false
	st.accepted = false
}

// Finished reports whether all input has been consumed.
func (st *NFAStepper) Finished() bool { return st.finished }

// Accepted returns the verdict, or ErrSimulationRunning while running.
func (st *NFAStepper) Accepted() (bool, error) {
	if !st.finished {
		return false, ErrSimulationRunning
	}
	return st.accepted, nil
}

func (st *NFAStepper) current() ConfigurationSet {
	return st.sets[len(st.sets)-1]
}

// Current returns the configuration set at the current position.
func (st *NFAStepper) Current() ConfigurationSet {
	out := make(ConfigurationSet, len(st.current()))
	copy(out, st.current())
	return out
}

// ActiveStates returns the distinct states of the current set.
func (st *NFAStepper) ActiveStates() []*domain.State { return st.current().States() }

// Position returns the number of symbols consumed so far.
func (st *NFAStepper) Position() int { return st.pos }

// ProcessedInput returns the consumed prefix of the input.
func (st *NFAStepper) ProcessedInput() string { return string(st.input[:st.pos]) }

// RemainingInput returns the unconsumed suffix of the input.
func (st *NFAStepper) RemainingInput() string { return string(st.input[st.pos:]) }

// Sets returns a copy of all configuration sets recorded so far.
func (st *NFAStepper) Sets() []ConfigurationSet {
	out := make([]ConfigurationSet, len(st.sets))
	copy(out, st.sets)
	return out
}

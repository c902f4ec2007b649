package sim

import "github.com/aretw0/finite/pkg/domain"

// DFAStepper exposes a DFA simulation as an explicit state machine with
// two modes, running and finished. Step consumes one symbol at a time;
// at end of input it records acceptance and finishes. A stepper holds
// private cursor state and is meant for a single caller.
type DFAStepper struct {
	sim      *DFASimulator
	input    []rune
	pos      int
	current  *domain.State
	steps    []Step
	finished bool
	accepted bool
}

// Step executes one step. It returns true if a symbol was consumed and
// the simulation is still running, false once the simulation finished
// (end of input, a missing transition, or a prior finish).
func (st *DFAStepper) Step() bool {
	if st.finished {
		return false
	}

	if st.pos >= len(st.input) {
		st.finished = true
		st.accepted = st.sim.a.IsFinal(st.current.ID)
		return false
	}

	symbol := string(st.input[st.pos])
	t, ok := st.sim.a.TransitionFromOn(st.current.ID, symbol)
	if !ok {
		st.steps = append(st.steps, Step{State: st.current, Position: st.pos + 1, Symbol: symbol})
		st.finished = true
		st.accepted = false
		return false
	}

	next, _ := st.sim.a.StateByID(t.To)
	tr := t
	st.current = next
	st.pos++
	st.steps = append(st.steps, Step{State: st.current, Position: st.pos, Symbol: symbol, Transition: &tr})

	if st.pos >= len(st.input) {
		st.finished = true
		st.accepted = st.sim.a.IsFinal(st.current.ID)
	}
	return true
}

// RunToCompletion drives the simulation to the finished mode and returns
// the verdict.
func (st *DFAStepper) RunToCompletion() bool {
	for !st.finished {
		st.Step()
	}
	return st.accepted
}

// Reset returns the stepper to the initial running mode over the same
// input.
func (st *DFAStepper) Reset() {
	st.pos = 0
	st.current = st.sim.a.Initial()
	st.steps = []Step{{State: st.current, Position: 0}}
	st.finished = false
	st.accepted = false
}

// Finished reports whether the simulation has consumed all input or
// halted.
func (st *DFAStepper) Finished() bool { return st.finished }

// Accepted returns the verdict. Querying it while the simulation is
// still running is an error.
func (st *DFAStepper) Accepted() (bool, error) {
	if !st.finished {
		return false, ErrSimulationRunning
	}
	return st.accepted, nil
}

// CurrentState returns the state the walk is in.
func (st *DFAStepper) CurrentState() *domain.State { return st.current }

// Position returns the number of symbols consumed so far.
func (st *DFAStepper) Position() int { return st.pos }

// ProcessedInput returns the consumed prefix of the input.
func (st *DFAStepper) ProcessedInput() string { return string(st.input[:st.pos]) }

// RemainingInput returns the unconsumed suffix of the input.
func (st *DFAStepper) RemainingInput() string { return string(st.input[st.pos:]) }

// Steps returns a copy of the trace recorded so far.
func (st *DFAStepper) Steps() []Step {
	out := make([]Step, len(st.steps))
	copy(out, st.steps)
	return out
}

/*
Package finite is a toolkit for building, simulating and converting finite
automata (DFAs and NFAs, including epsilon transitions).

It separates the automaton definition (states, transitions, alphabet) from
the engines that walk it: a deterministic simulator with a full step trace,
a nondeterministic simulator that tracks every active configuration in
parallel, and a subset construction that converts an NFA into an
equivalent DFA while recording each step of the algorithm.

# Concept

An automaton is a plain transition graph. The package keeps the core free
of I/O: serialization lives in pkg/schema, persistence behind pkg/ports,
and rendering in the command line tool. This Hexagonal Architecture allows
the engines to be embedded in any interface: CLI, HTTP server, or a larger
language-processing pipeline.

# Key Features

  - Deterministic Simulation: a step-by-step trace of one walk through a DFA.
  - Nondeterministic Simulation: all active states advance in lockstep, with
    epsilon closures applied after every symbol.
  - Subset Construction: NFA to DFA conversion with a step log and an
    explicit mapping from each DFA state to its NFA state set.
  - Strict Contracts: construction rejects dangling transitions, duplicate
    states and nondeterminism in DFA mode at the point of mutation.

# Usage

Build an automaton with the fluent builder in pkg/dsl, or load one from a
JSON or YAML document:

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/finite"
		"github.com/aretw0/finite/pkg/dsl"
	)

	func main() {
		a, err := dsl.NFA().
			State("q0").Initial().
			State("q2").Final().
			Transition("q0", "q0", "a").
			Transition("q0", "q0", "b").
			Transition("q0", "q1", "a").
			Transition("q1", "q2", "b").
			Build()
		if err != nil {
			log.Fatal(err)
		}

		accepted, err := finite.IsAccepted(a, "aab")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(accepted) // true
	}

The lower-level engines in pkg/sim and pkg/subset expose full traces,
steppers and conversion metrics for callers that need more than the
verdict.
*/
package finite

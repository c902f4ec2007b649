/*
Package dsl provides a fluent builder for constructing automata in code.

	a, err := dsl.NFA().
		State("q0").Initial().
		State("q1").
		State("q2").Final().
		Transition("q0", "q1", "a").
		Epsilon("q0", "q1").
		Transition("q1", "q2", "b").
		Build()

Validation happens once in Build, so call chains stay uncluttered; the
first construction error ends the build.
*/
package dsl

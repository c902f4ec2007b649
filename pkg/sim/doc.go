/*
Package sim implements simulation of finite automata over input strings.

It provides epsilon-closure computation, a DFA simulator, an NFA simulator
that tracks sets of configurations, and resumable step-by-step variants of
both. Simulators are constructed once per automaton and validated at
construction time; simulation itself is a pure computation that never
mutates the automaton.
*/
package sim

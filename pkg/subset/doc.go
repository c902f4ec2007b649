/*
Package subset converts nondeterministic finite automata into equivalent
deterministic ones via the subset construction.

Every reachable set of NFA states becomes one DFA state. The conversion
returns the DFA, an ordered step log, and the explicit StateSet origin of
every DFA state; the human-readable label written on DFA states is
presentation only and is never parsed back.
*/
package subset

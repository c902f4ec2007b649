/*
Package schema defines the serialization contract between the automaton
core and its collaborators (API layers, editors, storage).

A Document is the sole wire shape: a states list (id, is_final, label,
position), a transitions list (from/to state IDs and symbol), a nullable
initial state ID, a final-state ID list, and the alphabet. The same
record encodes to JSON and YAML, and can be decoded from a generic map.

Decoding rebuilds states first, then transitions (failing on unknown
state IDs), then final-state flags, and finally validates the whole
automaton. A serialize/deserialize round trip reproduces an observably
identical automaton under set equality.
*/
package schema

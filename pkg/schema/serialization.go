package schema

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/finite/pkg/domain"
)

// FromAutomaton captures an automaton into its wire form. Output
// ordering is deterministic: states and finals sorted by ID, transitions
// by (from, symbol, to), alphabet sorted.
func FromAutomaton(a *domain.Automaton) *Document {
	doc := &Document{
		Alphabet: a.Alphabet(),
	}
	for _, s := range a.States() {
		doc.States = append(doc.States, StateRecord{
			ID:       s.ID,
			IsFinal:  s.IsFinal,
			Label:    s.Label,
			Position: [2]float64{s.Pos.X, s.Pos.Y},
		})
	}
	for _, t := range a.Transitions() {
		doc.Transitions = append(doc.Transitions, TransitionRecord{
			FromStateID: t.From,
			ToStateID:   t.To,
			Symbol:      t.Symbol,
		})
	}
	if initial := a.Initial(); initial != nil {
		id := initial.ID
		doc.InitialStateID = &id
	}
	for _, s := range a.Finals() {
		doc.FinalStateIDs = append(doc.FinalStateIDs, s.ID)
	}
	return doc
}

// Automaton rebuilds a domain automaton from the wire form.
//
// States are created first to form the ID lookup, then transitions (an
// unknown endpoint is a lookup error), then final flags, then alphabet;
// the result is validated wholesale before it is returned. The automaton
// is rebuilt in NFA mode: determinism is a property callers check via
// IsDeterministic, not part of the wire shape.
func (d *Document) Automaton() (*domain.Automaton, error) {
	a := domain.NewNFA()

	for i, rec := range d.States {
		s, err := domain.NewState(rec.ID)
		if err != nil {
			return nil, &FieldError{Field: fmt.Sprintf("states[%d].id", i), Reason: err.Error(), Err: err}
		}
		s.IsFinal = rec.IsFinal
		s.Label = rec.Label
		s.Pos = domain.Position{X: rec.Position[0], Y: rec.Position[1]}
		if err := a.AddState(s); err != nil {
			return nil, &FieldError{Field: fmt.Sprintf("states[%d]", i), Reason: err.Error(), Err: err}
		}
	}

	for i, rec := range d.Transitions {
		t := domain.Transition{From: rec.FromStateID, To: rec.ToStateID, Symbol: rec.Symbol}
		if err := a.AddTransition(t); err != nil {
			return nil, &FieldError{Field: fmt.Sprintf("transitions[%d]", i), Reason: err.Error(), Err: err}
		}
	}

	if d.InitialStateID != nil && *d.InitialStateID != "" {
		if err := a.SetInitial(*d.InitialStateID); err != nil {
			return nil, &FieldError{Field: "initial_state_id", Reason: err.Error(), Err: err}
		}
	}

	for i, id := range d.FinalStateIDs {
		if err := a.AddFinal(id); err != nil {
			return nil, &FieldError{Field: fmt.Sprintf("final_state_ids[%d]", i), Reason: err.Error(), Err: err}
		}
	}

	for _, sym := range d.Alphabet {
		a.AddSymbol(sym)
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("decoded automaton invalid: %w", err)
	}
	return a, nil
}

// EncodeJSON serializes an automaton to JSON.
func EncodeJSON(a *domain.Automaton) ([]byte, error) {
	return json.MarshalIndent(FromAutomaton(a), "", "  ")
}

// DecodeJSON rebuilds an automaton from JSON.
func DecodeJSON(data []byte) (*domain.Automaton, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse automaton JSON: %w", err)
	}
	return doc.Automaton()
}

// EncodeYAML serializes an automaton to YAML.
func EncodeYAML(a *domain.Automaton) ([]byte, error) {
	return yaml.Marshal(FromAutomaton(a))
}

// DecodeYAML rebuilds an automaton from YAML.
func DecodeYAML(data []byte) (*domain.Automaton, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse automaton YAML: %w", err)
	}
	return doc.Automaton()
}

// FromMap decodes a Document from a generic map, as produced by JSON
// decoders that were not given a target type.
func FromMap(m map[string]any) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("failed to decode automaton map: %w", err)
	}
	return &doc, nil
}

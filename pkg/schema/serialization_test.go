package schema

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aretw0/finite/pkg/domain"
)

func sampleAutomaton(t *testing.T) *domain.Automaton {
	t.Helper()
	a := domain.NewNFA()
	for _, id := range []string{"q0", "q1", "q2"} {
		s, err := domain.NewState(id)
		if err != nil {
			t.Fatalf("NewState(%q): %v", id, err)
		}
		if err := a.AddState(s); err != nil {
			t.Fatalf("AddState(%q): %v", id, err)
		}
	}
	transitions := []domain.Transition{
		{From: "q0", To: "q1", Symbol: domain.Epsilon},
		{From: "q0", To: "q1", Symbol: "a"},
		{From: "q1", To: "q2", Symbol: "b"},
	}
	for _, tr := range transitions {
		if err := a.AddTransition(tr); err != nil {
			t.Fatalf("AddTransition(%v): %v", tr, err)
		}
	}
	if err := a.SetInitial("q0"); err != nil {
		t.Fatal(err)
	}
	if err := a.AddFinal("q2"); err != nil {
		t.Fatal(err)
	}
	s, _ := a.StateByID("q1")
	s.Label = "middle"
	s.Pos = domain.Position{X: 120, Y: 40}
	return a
}

func assertObservablyEqual(t *testing.T, want, got *domain.Automaton) {
	t.Helper()

	wantStates := map[string]domain.State{}
	for _, s := range want.States() {
		wantStates[s.ID] = *s
	}
	gotStates := map[string]domain.State{}
	for _, s := range got.States() {
		gotStates[s.ID] = *s
	}
	if !reflect.DeepEqual(wantStates, gotStates) {
		t.Errorf("states differ:\nwant %v\ngot  %v", wantStates, gotStates)
	}

	if !reflect.DeepEqual(want.Transitions(), got.Transitions()) {
		t.Errorf("transitions differ:\nwant %v\ngot  %v", want.Transitions(), got.Transitions())
	}

	wantInitial, gotInitial := "", ""
	if s := want.Initial(); s != nil {
		wantInitial = s.ID
	}
	if s := got.Initial(); s != nil {
		gotInitial = s.ID
	}
	if wantInitial != gotInitial {
		t.Errorf("initial state: want %q, got %q", wantInitial, gotInitial)
	}

	if !reflect.DeepEqual(idList(want.Finals()), idList(got.Finals())) {
		t.Errorf("final states differ: want %v, got %v", idList(want.Finals()), idList(got.Finals()))
	}

	if !reflect.DeepEqual(want.Alphabet(), got.Alphabet()) {
		t.Errorf("alphabet: want %v, got %v", want.Alphabet(), got.Alphabet())
	}
}

func idList(states []*domain.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.ID
	}
	return out
}

func TestRoundTripJSON(t *testing.T) {
	a := sampleAutomaton(t)

	data, err := EncodeJSON(a)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	assertObservablyEqual(t, a, got)
}

func TestRoundTripYAML(t *testing.T) {
	a := sampleAutomaton(t)

	data, err := EncodeYAML(a)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	got, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	assertObservablyEqual(t, a, got)
}

func TestDecode_UnknownTransitionEndpoint(t *testing.T) {
	doc := Document{
		States:      []StateRecord{{ID: "q0"}},
		Transitions: []TransitionRecord{{FromStateID: "q0", ToStateID: "ghost", Symbol: "a"}},
	}

	_, err := doc.Automaton()
	if !errors.Is(err, domain.ErrStateNotFound) {
		t.Fatalf("want ErrStateNotFound, got %v", err)
	}
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("want *FieldError, got %T", err)
	}
	if fieldErr.Field != "transitions[0]" {
		t.Errorf("field = %q, want %q", fieldErr.Field, "transitions[0]")
	}
}

func TestDecode_UnknownInitialState(t *testing.T) {
	initial := "ghost"
	doc := Document{
		States:         []StateRecord{{ID: "q0"}},
		InitialStateID: &initial,
	}

	_, err := doc.Automaton()
	if !errors.Is(err, domain.ErrStateNotFound) {
		t.Fatalf("want ErrStateNotFound, got %v", err)
	}
}

func TestDecode_DuplicateStateID(t *testing.T) {
	doc := Document{
		States: []StateRecord{{ID: "q0"}, {ID: "q0"}},
	}
	_, err := doc.Automaton()
	if !errors.Is(err, domain.ErrStateExists) {
		t.Fatalf("want ErrStateExists, got %v", err)
	}
}

func TestDecode_FinalFlagsReapplied(t *testing.T) {
	// The final-state list wins even when is_final flags are stale.
	doc := Document{
		States:        []StateRecord{{ID: "q0"}, {ID: "q1", IsFinal: false}},
		FinalStateIDs: []string{"q1"},
	}
	a, err := doc.Automaton()
	if err != nil {
		t.Fatalf("Automaton: %v", err)
	}
	if !a.IsFinal("q1") {
		t.Error("q1 should be final after decode")
	}
	s, _ := a.StateByID("q1")
	if !s.IsFinal {
		t.Error("state flag should be re-applied from final_state_ids")
	}
}

func TestDecode_AlphabetWithoutTransitions(t *testing.T) {
	doc := Document{
		States:   []StateRecord{{ID: "q0"}},
		Alphabet: []string{"a", "b"},
	}
	a, err := doc.Automaton()
	if err != nil {
		t.Fatalf("Automaton: %v", err)
	}
	if !reflect.DeepEqual(a.Alphabet(), []string{"a", "b"}) {
		t.Errorf("alphabet = %v, want [a b]", a.Alphabet())
	}
}

func TestFromMap(t *testing.T) {
	m := map[string]any{
		"states": []any{
			map[string]any{"id": "q0", "is_final": false, "position": []any{1.0, 2.0}},
			map[string]any{"id": "q1", "is_final": true},
		},
		"transitions": []any{
			map[string]any{"from_state_id": "q0", "to_state_id": "q1", "symbol": "a"},
		},
		"initial_state_id": "q0",
		"final_state_ids":  []any{"q1"},
		"alphabet":         []any{"a"},
	}

	doc, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	a, err := doc.Automaton()
	if err != nil {
		t.Fatalf("Automaton: %v", err)
	}
	if a.Initial() == nil || a.Initial().ID != "q0" {
		t.Errorf("initial = %v, want q0", a.Initial())
	}
	if got := a.TransitionCount(); got != 1 {
		t.Errorf("transitions = %d, want 1", got)
	}
	s, _ := a.StateByID("q0")
	if s.Pos.X != 1.0 || s.Pos.Y != 2.0 {
		t.Errorf("position = %+v, want {1 2}", s.Pos)
	}
}

package finite_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/finite"
	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/dsl"
)

func buildEndsInAB(t *testing.T) *domain.Automaton {
	t.Helper()

	a, err := dsl.NFA().
		State("q0").Initial().
		State("q2").Final().
		Transition("q0", "q0", "a").
		Transition("q0", "q0", "b").
		Transition("q0", "q1", "a").
		Transition("q1", "q2", "b").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return a
}

func TestFacade_Integration(t *testing.T) {
	nfa := buildEndsInAB(t)

	// 1. Acceptance through the NFA engine
	accepted, err := finite.IsAccepted(nfa, "abab")
	if err != nil {
		t.Fatalf("IsAccepted() error = %v", err)
	}
	if !accepted {
		t.Error("expected 'abab' to be accepted")
	}

	// 2. Conversion and cross-checked verdicts
	result, err := finite.Convert(nfa)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	for _, input := range []string{"", "a", "ab", "abab", "abba"} {
		want, err := finite.IsAccepted(nfa, input)
		if err != nil {
			t.Fatalf("IsAccepted(nfa, %q) error = %v", input, err)
		}
		got, err := finite.IsAccepted(result.DFA, input)
		if err != nil {
			t.Fatalf("IsAccepted(dfa, %q) error = %v", input, err)
		}
		if got != want {
			t.Errorf("verdict mismatch on %q: nfa=%v dfa=%v", input, want, got)
		}
	}

	// 3. Analysis numbers line up with the conversion
	analysis, err := finite.Analyze(nfa)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if analysis.NFAStates != 3 {
		t.Errorf("NFAStates = %d, want 3", analysis.NFAStates)
	}
	if analysis.DFAStates != result.DFA.StateCount() {
		t.Errorf("DFAStates = %d, want %d", analysis.DFAStates, result.DFA.StateCount())
	}
}

func TestFacade_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a := buildEndsInAB(t)

	for _, name := range []string{"machine.json", "machine.yaml"} {
		path := filepath.Join(dir, name)
		if err := finite.SaveFile(path, a); err != nil {
			t.Fatalf("SaveFile(%s) error = %v", name, err)
		}

		loaded, err := finite.LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) error = %v", name, err)
		}
		if loaded.StateCount() != a.StateCount() {
			t.Errorf("%s: StateCount = %d, want %d", name, loaded.StateCount(), a.StateCount())
		}
		if loaded.TransitionCount() != a.TransitionCount() {
			t.Errorf("%s: TransitionCount = %d, want %d", name, loaded.TransitionCount(), a.TransitionCount())
		}

		accepted, err := finite.IsAccepted(loaded, "ab")
		if err != nil {
			t.Fatalf("IsAccepted() after load error = %v", err)
		}
		if !accepted {
			t.Errorf("%s: expected 'ab' accepted after round trip", name)
		}
	}
}

func TestFacade_LoadFileErrors(t *testing.T) {
	if _, err := finite.LoadFile("missing.json"); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "machine.txt")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := finite.LoadFile(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestFacade_Mermaid(t *testing.T) {
	out := finite.Mermaid(buildEndsInAB(t))
	if out == "" {
		t.Fatal("Mermaid() returned empty output")
	}
	for _, want := range []string{"graph LR", "q2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Mermaid() output missing %q:\n%s", want, out)
		}
	}
}

package finite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/finite/internal/presentation/graph"
	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/schema"
	"github.com/aretw0/finite/pkg/sim"
	"github.com/aretw0/finite/pkg/subset"
)

// Version is the release version, overridable at build time via ldflags.
var Version = "0.1.0"

// IsAccepted reports whether the automaton accepts the input string.
// It picks the deterministic engine when the transition structure allows
// it and falls back to the parallel NFA engine otherwise.
func IsAccepted(a *domain.Automaton, input string) (bool, error) {
	if a.IsDeterministic() {
		simulator, err := sim.NewDFASimulator(a)
		if err != nil {
			return false, err
		}
		return simulator.IsAccepted(input)
	}

	simulator, err := sim.NewNFASimulator(a)
	if err != nil {
		return false, err
	}
	return simulator.IsAccepted(input)
}

// Convert runs the subset construction on an NFA and returns the
// equivalent DFA together with the conversion trace.
func Convert(a *domain.Automaton) (*subset.Result, error) {
	return subset.Convert(a)
}

// Analyze converts the NFA and reports size metrics of both machines.
func Analyze(a *domain.Automaton) (*subset.Analysis, error) {
	return subset.Analyze(a)
}

// Mermaid renders the automaton as Mermaid flowchart text.
func Mermaid(a *domain.Automaton) string {
	return graph.GenerateMermaid(a, nil)
}

// LoadFile reads an automaton from a JSON or YAML file, chosen by the
// file extension (.json, .yaml, .yml).
func LoadFile(path string) (*domain.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return schema.DecodeJSON(data)
	case ".yaml", ".yml":
		return schema.DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .json, .yaml or .yml)", ext)
	}
}

// SaveFile writes the automaton to a JSON or YAML file, chosen by the
// file extension (.json, .yaml, .yml).
func SaveFile(path string, a *domain.Automaton) error {
	var (
		data []byte
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = schema.EncodeJSON(a)
	case ".yaml", ".yml":
		data, err = schema.EncodeYAML(a)
	default:
		return fmt.Errorf("unsupported file extension %q (want .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

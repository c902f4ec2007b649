package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/finite/pkg/domain"
)

// Overlay contains dynamic simulation data to visualize on the graph.
type Overlay struct {
	VisitedStates []string
	CurrentStates []string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from an automaton.
// It applies semantic styling:
// - Final state: (((Double Circle)))
// - Default: ((Circle))
// The initial state is marked with an entry arrow from a hidden point.
// Parallel transitions between the same pair of states are merged into a
// single edge with a comma-joined label. It also applies overlay styles
// (Visited/Current) if provided.
func GenerateMermaid(a *domain.Automaton, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range a.States() {
		// Sanitize ID for Mermaid
		safeID := sanitizeMermaidID(s.ID)

		opener, closer := "((", "))"
		if a.IsFinal(s.ID) {
			opener, closer = "(((", ")))" // Double circle
		}

		label := s.ID
		if s.Label != "" && s.Label != s.ID {
			label = fmt.Sprintf("%s <br/> %s", s.ID, escapeMermaidLabel(s.Label))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))
	}

	// Entry arrow for the initial state
	if initial := a.Initial(); initial != nil {
		sb.WriteString(fmt.Sprintf("    __start__(( )) --> %s\n", sanitizeMermaidID(initial.ID)))
	}

	for _, edge := range mergedEdges(a) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(edge.from), escapeMermaidLabel(edge.label), sanitizeMermaidID(edge.to)))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		// Deduplicate visited states (using safeIDs)
		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		for _, id := range overlay.CurrentStates {
			safeID := sanitizeMermaidID(id)
			if safeID != "" {
				sb.WriteString(fmt.Sprintf("    class %s current;\n", safeID))
			}
		}
	}

	return sb.String()
}

type edge struct {
	from  string
	to    string
	label string
}

// mergedEdges collapses parallel transitions into one labelled edge per
// (from, to) pair, preserving the automaton's sorted transition order.
func mergedEdges(a *domain.Automaton) []edge {
	index := make(map[[2]string]int)
	var edges []edge

	for _, t := range a.Transitions() {
		symbol := t.Symbol
		if t.IsEpsilon() {
			symbol = "ε"
		}

		key := [2]string{t.From, t.To}
		if i, ok := index[key]; ok {
			edges[i].label += "," + symbol
			continue
		}
		index[key] = len(edges)
		edges = append(edges, edge{from: t.From, to: t.To, label: symbol})
	}

	return edges
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "{", "_")
	s = strings.ReplaceAll(s, "}", "_")
	s = strings.ReplaceAll(s, ",", "_")
	return s
}

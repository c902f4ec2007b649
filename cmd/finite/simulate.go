package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/finite"
	"github.com/aretw0/finite/internal/presentation/tui"
	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <file> <input>",
	Short: "Run an input string through an automaton",
	Long:  `Loads the automaton and simulates the input, printing the verdict and optionally the full trace. The simulation engine (DFA or NFA) is chosen from the transition structure.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		trace, _ := cmd.Flags().GetBool("trace")

		a, err := finite.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}
		input := args[1]

		var report string
		if a.IsDeterministic() {
			logger.Debug("using deterministic engine", "states", a.StateCount())
			report, err = simulateDFA(a, input, trace)
		} else {
			logger.Debug("using nondeterministic engine", "states", a.StateCount())
			report, err = simulateNFA(a, input, trace)
		}
		if err != nil {
			fmt.Printf("Simulation failed: %v\n", err)
			os.Exit(1)
		}

		render := tui.NewRenderer()
		out, err := render(report)
		if err != nil {
			// Fall back to raw markdown if the renderer chokes
			out = report
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolP("trace", "t", false, "Show the full step trace")
}

func simulateDFA(a *domain.Automaton, input string, trace bool) (string, error) {
	simulator, err := sim.NewDFASimulator(a)
	if err != nil {
		return "", err
	}

	accepted, steps, err := simulator.Simulate(input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writeVerdict(&sb, "DFA", input, accepted)

	if trace {
		sb.WriteString("\n## Trace\n\n")
		sb.WriteString("| Step | Symbol | State |\n|---|---|---|\n")
		for i, step := range steps {
			symbol := step.Symbol
			if symbol == "" {
				symbol = "-"
			}
			state := step.State.ID
			if step.Halted() {
				state += " (halted)"
			}
			fmt.Fprintf(&sb, "| %d | %s | %s |\n", i, symbol, state)
		}
	}
	return sb.String(), nil
}

func simulateNFA(a *domain.Automaton, input string, trace bool) (string, error) {
	simulator, err := sim.NewNFASimulator(a)
	if err != nil {
		return "", err
	}

	accepted, sets, err := simulator.Simulate(input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writeVerdict(&sb, "NFA", input, accepted)

	if trace {
		sb.WriteString("\n## Active states\n\n")
		sb.WriteString("| Position | States |\n|---|---|\n")
		for i, set := range sets {
			ids := set.StateIDs()
			cell := "-"
			if len(ids) > 0 {
				cell = strings.Join(ids, ", ")
			}
			fmt.Fprintf(&sb, "| %d | %s |\n", i, cell)
		}
	}
	return sb.String(), nil
}

func writeVerdict(sb *strings.Builder, kind, input string, accepted bool) {
	fmt.Fprintf(sb, "# Simulation (%s)\n\n", kind)
	fmt.Fprintf(sb, "**Input:** %q\n\n", input)
	if accepted {
		sb.WriteString("**Verdict:** accepted ✅\n")
	} else {
		sb.WriteString("**Verdict:** rejected ❌\n")
	}
}

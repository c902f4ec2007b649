package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/finite"
	"github.com/aretw0/finite/internal/presentation/tui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Compare an NFA with its subset-construction DFA",
	Long:  `Converts the automaton and reports the size of both machines, including the state explosion ratio.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := finite.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		analysis, err := finite.Analyze(a)
		if err != nil {
			fmt.Printf("Analysis failed: %v\n", err)
			os.Exit(1)
		}

		var sb strings.Builder
		sb.WriteString("# Conversion Analysis\n\n")
		sb.WriteString("| Metric | NFA | DFA |\n|---|---|---|\n")
		fmt.Fprintf(&sb, "| States | %d | %d |\n", analysis.NFAStates, analysis.DFAStates)
		fmt.Fprintf(&sb, "| Transitions | %d | %d |\n", analysis.NFATransitions, analysis.DFATransitions)
		fmt.Fprintf(&sb, "| Epsilon transitions | %d | 0 |\n", analysis.EpsilonTransitions)
		fmt.Fprintf(&sb, "\n**Alphabet size:** %d\n\n", analysis.AlphabetSize)
		fmt.Fprintf(&sb, "**Construction steps:** %d\n\n", analysis.StepsTaken)
		fmt.Fprintf(&sb, "**State explosion ratio:** %.2f\n", analysis.ExplosionRatio)

		render := tui.NewRenderer()
		out, err := render(sb.String())
		if err != nil {
			out = sb.String()
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

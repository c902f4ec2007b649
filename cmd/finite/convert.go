package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/finite"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert an NFA into an equivalent DFA",
	Long:  `Runs the subset construction on the automaton and writes the resulting DFA to the output file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		showSteps, _ := cmd.Flags().GetBool("steps")
		logger := newLogger(cmd)

		a, err := finite.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		result, err := finite.Convert(a)
		if err != nil {
			fmt.Printf("Conversion failed: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("conversion finished",
			"nfa_states", a.StateCount(),
			"dfa_states", result.DFA.StateCount(),
			"steps", len(result.Steps))

		if showSteps {
			for _, step := range result.Steps {
				fmt.Println(step)
			}
			fmt.Println()
			for _, s := range result.DFA.States() {
				set := result.Mapping[s.ID]
				fmt.Printf("%s = {%s}\n", s.ID, strings.Join(set.IDs(), ","))
			}
			fmt.Println()
		}

		if output == "" {
			output = defaultOutputName(args[0])
		}
		if err := finite.SaveFile(output, result.DFA); err != nil {
			fmt.Printf("Error writing DFA: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("DFA written to %s (%d states)\n", output, result.DFA.StateCount())
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "Output file for the DFA (default <file>.dfa.json)")
	convertCmd.Flags().Bool("steps", false, "Print the conversion step log")
}

func defaultOutputName(input string) string {
	base := strings.TrimSuffix(input, ".json")
	base = strings.TrimSuffix(base, ".yaml")
	base = strings.TrimSuffix(base, ".yml")
	return base + ".dfa.json"
}

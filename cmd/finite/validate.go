package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/finite"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an automaton file for consistency",
	Long:  `Loads the automaton and reports dangling transitions, duplicate states and nondeterminism.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := finite.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		kind := "NFA"
		if a.IsDeterministic() {
			kind = "DFA"
		}
		fmt.Printf("Automaton is valid! ✅ (%s, %d states, %d transitions)\n",
			kind, a.StateCount(), a.TransitionCount())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

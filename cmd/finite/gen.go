package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/finite"
	"github.com/aretw0/finite/pkg/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen <file>",
	Short: "Enumerate strings accepted by an automaton",
	Long:  `Walks the automaton breadth-first and prints accepted strings, shortest first. The empty string is printed as ε.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		maxLength, _ := cmd.Flags().GetInt("max-length")

		a, err := finite.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		generator, err := gen.New(a)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		strings := generator.Accepted(count, maxLength)
		if len(strings) == 0 {
			fmt.Println("No accepted strings within the given bounds.")
			return
		}
		for _, s := range strings {
			if s == "" {
				s = "ε"
			}
			fmt.Println(s)
		}
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().IntP("count", "c", 20, "Maximum number of strings to print")
	genCmd.Flags().IntP("max-length", "l", 10, "Maximum string length to explore")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/finite"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the automaton visualization",
	Long:  `Loads the automaton and outputs a Mermaid diagram (graph LR) representing its transition structure.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := finite.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(finite.Mermaid(a))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

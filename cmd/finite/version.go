package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/finite"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of finite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finite version %s\n", strings.TrimSpace(finite.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

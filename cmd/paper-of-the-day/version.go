package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of paper-of-the-day",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("paper-of-the-day %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

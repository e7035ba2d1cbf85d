// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/CentML/paper-of-the-day/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past paper-of-the-day selections",
	Long: `History reads the local run store and lists past selections, most
recent first. Runs that found no relevant paper are listed too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		store, err := history.Open(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		recs, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			return yaml.NewEncoder(os.Stdout).Encode(recs)
		}

		if len(recs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		fmt.Printf("%-12s  %-16s  %-10s  %-8s  %s\n", "Date", "Winner", "Candidates", "Relevant", "Posted")
		for _, r := range recs {
			winner := r.WinnerID
			if winner == "" {
				winner = "-"
			}
			posted := "no"
			if r.Posted {
				posted = "yes"
			}
			fmt.Printf("%-12s  %-16s  %-10d  %-8d  %s\n", r.Date, winner, r.Candidates, r.Relevant, posted)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "maximum runs to list (0 = all)")
	historyCmd.Flags().Bool("yaml", false, "output records as YAML")

	rootCmd.AddCommand(historyCmd)
}

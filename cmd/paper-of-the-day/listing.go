// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/CentML/paper-of-the-day/internal/httputil"
	"github.com/CentML/paper-of-the-day/internal/listing"
)

var listingCmd = &cobra.Command{
	Use:   "listing",
	Short: "Print one day's candidate identifiers without judging them",
	Long: `Listing fetches the catalog page and prints the paper identifiers
published on the target date, one per line, in document order. Useful for
checking extraction before a full run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		target, err := targetDate(cmd)
		if err != nil {
			return err
		}

		client := &http.Client{Timeout: cfg.Listing.Timeout}
		doc, err := httputil.GetDocument(cmd.Context(), client, cfg.Listing.CatalogURL, cfg.Listing.UserAgent)
		if err != nil {
			return err
		}

		ids := listing.NewExtractor(cfg.Listing).Extract(doc, target)
		if len(ids) == 0 {
			fmt.Printf("no publications found for %s\n", target.Format("2006-01-02"))
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	listingCmd.Flags().String("date", "", "listing date to extract (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(listingCmd)
}

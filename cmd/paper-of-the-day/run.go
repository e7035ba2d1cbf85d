// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CentML/paper-of-the-day/internal/history"
	"github.com/CentML/paper-of-the-day/internal/judge"
	"github.com/CentML/paper-of-the-day/internal/listing"
	"github.com/CentML/paper-of-the-day/internal/oracle"
	"github.com/CentML/paper-of-the-day/internal/paper"
	"github.com/CentML/paper-of-the-day/internal/publish"
	"github.com/CentML/paper-of-the-day/internal/workflow"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Select, summarize, and optionally publish a day's paper",
	Long: `Run performs one full selection: extract the target date's candidates from
the catalog listing, classify each abstract for relevance, fold the relevant
set to a single winner by pairwise comparison, and summarize the winner.

The run is recorded in the history store; a date that already has a record is
skipped unless --force is given. Posting is gated by publish.enabled (or
--post) and the webhook-url secret.`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Oracle.Model = model
	}
	if stream, _ := cmd.Flags().GetBool("stream"); stream {
		cfg.Oracle.Stream = true
	}
	if post, _ := cmd.Flags().GetBool("post"); post {
		cfg.Publish.Enabled = true
	}
	cfg.Oracle.APIKey = secretDefault("anthropic-api-key", cfg.Oracle.APIKey)
	cfg.Publish.WebhookURL = secretDefault("webhook-url", cfg.Publish.WebhookURL)

	if cfg.Oracle.APIKey == "" {
		return fmt.Errorf("no API key: set .secrets/anthropic-api-key or oracle.api_key")
	}
	if cfg.Publish.Enabled && cfg.Publish.WebhookURL == "" {
		return fmt.Errorf("publishing enabled but no webhook URL: set .secrets/webhook-url or publish.webhook_url")
	}

	target, err := targetDate(cmd)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		existing, err := store.Find(ctx, target.Format("2006-01-02"))
		if err != nil {
			return err
		}
		if existing != nil {
			fmt.Printf("%s already selected for %s (use --force to rerun)\n", existing.WinnerID, existing.Date)
			return nil
		}
	}

	oracleHTTP := &http.Client{Timeout: cfg.Oracle.Timeout}
	var client oracle.Client
	if cfg.Oracle.Stream {
		client = &oracle.StreamClient{APIKey: cfg.Oracle.APIKey, Client: oracleHTTP}
	} else {
		client = &oracle.MessagesClient{APIKey: cfg.Oracle.APIKey, Client: oracleHTTP}
	}

	var publisher publish.Publisher = publish.Nop{}
	if cfg.Publish.Enabled {
		publisher = &publish.Webhook{Config: cfg.Publish}
	}

	wf := &workflow.Workflow{
		Extractor: listing.NewExtractor(cfg.Listing),
		Fetcher:   &paper.ArxivFetcher{Config: cfg.Listing.HTTPConfig},
		Judge:     &judge.Judge{Oracle: client, Config: cfg.Oracle, Log: os.Stderr},
		Publisher: publisher,
		Recorder:  store,
		Config:    cfg,
		Log:       os.Stderr,
	}

	rec, err := wf.Run(ctx, target)
	if err != nil {
		return err
	}

	if !rec.HasWinner() {
		fmt.Printf("no paper of the day for %s (%d candidates, %d relevant)\n",
			rec.Date, rec.Candidates, rec.Relevant)
		return nil
	}

	fmt.Printf("paper of the day for %s: %s\n\n%s\n", rec.Date, rec.WinnerID, rec.Summary)
	if rec.Posted {
		fmt.Println("\nposted.")
	}
	return nil
}

// targetDate resolves the --date flag, defaulting to today.
func targetDate(cmd *cobra.Command) (time.Time, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	if dateStr == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: use YYYY-MM-DD", dateStr)
	}
	return t, nil
}

func init() {
	runCmd.Flags().String("date", "", "listing date to select for (YYYY-MM-DD, default today)")
	runCmd.Flags().String("model", "", "override the oracle model identifier")
	runCmd.Flags().Bool("stream", false, "use the streaming oracle transport")
	runCmd.Flags().Bool("post", false, "publish the summary even if publish.enabled is false")
	runCmd.Flags().Bool("force", false, "rerun a date that already has a history record")

	rootCmd.AddCommand(runCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-of-the-day CLI: it
// picks one paper from a day's arXiv listing, summarizes it, and
// optionally publishes the summary.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CentML/paper-of-the-day/internal/secrets"
	"github.com/CentML/paper-of-the-day/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when non-empty, otherwise the loaded
// secret for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paper-of-the-day CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-of-the-day",
	Short: "Pick, summarize, and publish one paper from a daily arXiv listing",
	Long: `paper-of-the-day watches one arXiv category listing. Each run extracts the
papers published on a target date, filters them for relevance against the
configured interests, reduces the relevant set to a single winner by pairwise
comparison, and produces a publishable summary of the winner.

Selection runs are recorded locally so a date is never posted twice.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-of-the-day.yaml or ~/.config/paper-of-the-day/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-of-the-day")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-of-the-day"))
		}
	}

	viper.SetEnvPrefix("PAPER_OF_THE_DAY")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setConfigDefaults() {
	viper.SetDefault("listing.catalog_url", "https://arxiv.org/list/cs.LG/recent")
	viper.SetDefault("listing.timeout", 30*time.Second)
	viper.SetDefault("listing.user_agent", "paper-of-the-day/0.1")
	viper.SetDefault("oracle.model", "claude-sonnet-4-5-20250929")
	viper.SetDefault("oracle.max_tokens", 1024)
	viper.SetDefault("oracle.timeout", 2*time.Minute)
	viper.SetDefault("selection.interests", "efficient machine learning systems and GPU compute")
	viper.SetDefault("selection.candidate_delay", 2*time.Second)
	viper.SetDefault("selection.summary_style", "enthusiastic but precise, no hashtags")
	viper.SetDefault("selection.summary_words", 200)
	viper.SetDefault("publish.timeout", 30*time.Second)
	viper.SetDefault("history.dir", "data")
	viper.SetDefault("output_dir", "output/runs")
}

// loadConfig assembles the typed config from viper's layered sources
// (defaults, config file, environment).
func loadConfig() types.Config {
	var cfg types.Config

	cfg.Listing.CatalogURL = viper.GetString("listing.catalog_url")
	cfg.Listing.Timeout = viper.GetDuration("listing.timeout")
	cfg.Listing.UserAgent = viper.GetString("listing.user_agent")
	cfg.Listing.NavSelector = viper.GetString("listing.nav_selector")
	cfg.Listing.HeadingSelector = viper.GetString("listing.heading_selector")
	cfg.Listing.EntrySelector = viper.GetString("listing.entry_selector")
	cfg.Listing.AbstractPrefix = viper.GetString("listing.abstract_prefix")
	cfg.Listing.DateLayout = viper.GetString("listing.date_layout")

	cfg.Oracle.Model = viper.GetString("oracle.model")
	cfg.Oracle.APIKey = viper.GetString("oracle.api_key")
	cfg.Oracle.MaxTokens = viper.GetInt("oracle.max_tokens")
	cfg.Oracle.Stream = viper.GetBool("oracle.stream")
	cfg.Oracle.Timeout = viper.GetDuration("oracle.timeout")

	cfg.Selection.Interests = viper.GetString("selection.interests")
	cfg.Selection.CandidateDelay = viper.GetDuration("selection.candidate_delay")
	cfg.Selection.SummaryStyle = viper.GetString("selection.summary_style")
	cfg.Selection.SummaryWords = viper.GetInt("selection.summary_words")

	cfg.Publish.Enabled = viper.GetBool("publish.enabled")
	cfg.Publish.WebhookURL = viper.GetString("publish.webhook_url")
	cfg.Publish.Timeout = viper.GetDuration("publish.timeout")
	cfg.Publish.UserAgent = cfg.Listing.UserAgent

	cfg.History.Dir = viper.GetString("history.dir")
	cfg.OutputDir = viper.GetString("output_dir")

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

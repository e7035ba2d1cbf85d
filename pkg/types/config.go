package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. A timed-out request surfaces
	// as a transport error, the same as an unreachable host.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-of-the-day/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ListingConfig holds settings for listing extraction.
type ListingConfig struct {
	HTTPConfig `yaml:",inline"`

	// CatalogURL is the listing page for the watched category
	// (e.g. "https://arxiv.org/list/cs.LG/recent").
	CatalogURL string `json:"catalog_url" yaml:"catalog_url"`

	// NavSelector selects the navigation links whose text carries a
	// date phrase (default "ul li a").
	NavSelector string `json:"nav_selector" yaml:"nav_selector"`

	// HeadingSelector selects the content-section date headings
	// (default "h3").
	HeadingSelector string `json:"heading_selector" yaml:"heading_selector"`

	// EntrySelector selects the sibling nodes that hold one paper each
	// (default "dt").
	EntrySelector string `json:"entry_selector" yaml:"entry_selector"`

	// AbstractPrefix is the href path prefix of a paper's abstract-view
	// link; the trailing path segment is the paper identifier
	// (default "/abs/").
	AbstractPrefix string `json:"abstract_prefix" yaml:"abstract_prefix"`

	// DateLayout is the time layout the catalog uses inside date
	// headings (default "2 Jan 2006"). The heading match is this
	// formatting contract, not a token count of the navigation text.
	DateLayout string `json:"date_layout" yaml:"date_layout"`
}

// OracleConfig holds settings for the judgment service.
type OracleConfig struct {
	// Model is the model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the API. Usually loaded from
	// .secrets/anthropic-api-key rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens caps the answer length per request (default 1024).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Stream selects the streaming transport instead of a single
	// blocking response. Both transports return the same answer.
	Stream bool `json:"stream" yaml:"stream"`

	// Timeout bounds one oracle round trip, streamed or not.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SelectionConfig holds settings for the judging workflow.
type SelectionConfig struct {
	// Interests describes the topics a paper must touch to count as
	// relevant. Passed verbatim to the relevance classifier.
	Interests string `json:"interests" yaml:"interests"`

	// CandidateDelay is the pause between successive candidate
	// evaluations. Scheduling policy only; zero is valid and does not
	// change the result.
	CandidateDelay time.Duration `json:"candidate_delay" yaml:"candidate_delay"`

	// SummaryStyle is prepended to the summarizer prompt
	// (e.g. "enthusiastic but precise, no hashtags").
	SummaryStyle string `json:"summary_style" yaml:"summary_style"`

	// SummaryWords is the target length of the final summary (default 200).
	SummaryWords int `json:"summary_words" yaml:"summary_words"`
}

// PublishConfig holds settings for posting the finished summary.
type PublishConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enabled gates the external post. When false the summary is only
	// printed and recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// WebhookURL receives the summary as a JSON POST. Usually loaded
	// from .secrets/webhook-url.
	WebhookURL string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database (default "data").
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups all component configurations.
type Config struct {
	Listing   ListingConfig   `json:"listing" yaml:"listing"`
	Oracle    OracleConfig    `json:"oracle" yaml:"oracle"`
	Selection SelectionConfig `json:"selection" yaml:"selection"`
	Publish   PublishConfig   `json:"publish" yaml:"publish"`
	History   HistoryConfig   `json:"history" yaml:"history"`

	// OutputDir is where per-run YAML artifacts are written
	// (default "output/runs").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunRecord is the durable result of one selection run.
type RunRecord struct {
	// Date is the listing date the run covered, formatted 2006-01-02.
	Date string `json:"date" yaml:"date"`

	// Candidates is the number of identifiers extracted from the listing.
	Candidates int `json:"candidates" yaml:"candidates"`

	// Relevant is the number of candidates the classifier accepted.
	Relevant int `json:"relevant" yaml:"relevant"`

	// WinnerID is the tournament winner's identifier. Empty when no
	// candidate was published or none was relevant.
	WinnerID string `json:"winner_id,omitempty" yaml:"winner_id,omitempty"`

	// Summary is the final publishable text for the winner.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Posted records whether the summary was delivered externally.
	Posted bool `json:"posted" yaml:"posted"`

	// CreatedAt is when the record was written.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// HasWinner reports whether the run produced a paper of the day.
func (r RunRecord) HasWinner() bool {
	return r.WinnerID != ""
}

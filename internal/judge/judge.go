// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package judge implements the oracle-backed decision functions:
// relevance classification, pairwise comparison, and summarization.
// Each declares the answer shape it accepts and never returns a value
// it could not validate.
package judge

import (
	"fmt"
	"io"

	"github.com/CentML/paper-of-the-day/internal/oracle"
	"github.com/CentML/paper-of-the-day/pkg/types"
)

// Judge binds the decision functions to one oracle client and model.
type Judge struct {
	Oracle oracle.Client
	Config types.OracleConfig

	// Log receives one usage line per oracle call. Nil discards.
	Log io.Writer
}

func (j *Judge) request(system string, messages []oracle.Message) oracle.Request {
	return oracle.Request{
		Model:     j.Config.Model,
		System:    system,
		Messages:  messages,
		MaxTokens: j.Config.MaxTokens,
	}
}

func (j *Judge) logUsage(fn string, u oracle.Usage) {
	if j.Log == nil {
		return
	}
	fmt.Fprintf(j.Log, "%s: %s\n", fn, u)
}

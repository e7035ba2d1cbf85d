// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package judge

import (
	"context"
	"fmt"

	"github.com/CentML/paper-of-the-day/internal/oracle"
)

const summarizeSystem = `You write the announcement for a daily "paper of the day"
feature. Work only from the paper content you are given. Return the announcement
text and nothing else.`

const defaultSummaryWords = 200

// Summarize produces the final publishable text for the winning paper
// from its full content, caller-supplied style directives, and a target
// word count. The answer is string-shaped; a malformed (empty) answer
// is an error — there is no fallback artifact.
func (j *Judge) Summarize(ctx context.Context, text, style string, words int) (string, error) {
	if words <= 0 {
		words = defaultSummaryWords
	}

	prompt := fmt.Sprintf("Style: %s\nTarget length: about %d words.\n\nPaper content:\n%s",
		style, words, text)

	resp, err := j.Oracle.Complete(ctx, j.request(summarizeSystem, []oracle.Message{
		{Role: oracle.RoleUser, Content: prompt},
	}))
	if err != nil {
		return "", fmt.Errorf("summarizing: %w", err)
	}
	j.logUsage("summarize", resp.Usage)

	summary, err := oracle.ParseText(resp.Text)
	if err != nil {
		return "", fmt.Errorf("summarizing: %w", err)
	}
	return summary, nil
}

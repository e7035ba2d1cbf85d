// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package judge

import (
	"context"
	"fmt"

	"github.com/CentML/paper-of-the-day/internal/oracle"
)

const classifySystem = `You screen academic papers for a daily pick. Given a reader's
interests and a paper abstract, decide whether the paper is relevant to those
interests. Answer with exactly one word: yes or no.`

// Classify asks the oracle whether an abstract is relevant to the
// stated interests. The answer is boolean-shaped; a malformed answer is
// returned as an oracle.AnswerError so the caller can exclude the
// candidate without aborting the run.
func (j *Judge) Classify(ctx context.Context, interests, abstract string) (bool, error) {
	prompt := fmt.Sprintf("Interests: %s\n\nAbstract:\n%s\n\nIs this paper relevant to the interests? Answer yes or no.",
		interests, abstract)

	resp, err := j.Oracle.Complete(ctx, j.request(classifySystem, []oracle.Message{
		{Role: oracle.RoleUser, Content: prompt},
	}))
	if err != nil {
		return false, fmt.Errorf("classifying: %w", err)
	}
	j.logUsage("classify", resp.Usage)

	relevant, err := oracle.ParseBool(resp.Text)
	if err != nil {
		return false, fmt.Errorf("classifying: %w", err)
	}
	return relevant, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package judge

import (
	"context"
	"fmt"

	"github.com/CentML/paper-of-the-day/internal/oracle"
)

const compareSystem = `You compare two academic papers by their abstracts and pick the
stronger candidate for a daily paper feature. Answer with exactly one character:
1 if the first paper is the stronger pick, 2 if the second.`

// clarifyPrompt is the extra turn appended when the first answer fails
// {1,2} validation.
const clarifyPrompt = "Answer with 1 or 2 only."

// compareAttempt enumerates the bounded retry sub-protocol: one normal
// attempt, then at most one clarification attempt.
type compareAttempt int

const (
	attemptNormal compareAttempt = iota
	attemptClarify
)

// Compare asks the oracle which of two abstracts is the stronger pick.
// The answer is constrained to {1, 2}. A malformed answer triggers
// exactly one clarification turn that carries the failed exchange; if
// that also fails validation the error (an oracle.AnswerError) is
// returned and the caller must stop — without a well-defined pairwise
// order the tournament cannot continue.
func (j *Judge) Compare(ctx context.Context, first, second string) (int, error) {
	messages := []oracle.Message{
		{Role: oracle.RoleUser, Content: comparePrompt(first, second)},
	}

	for attempt := attemptNormal; ; attempt++ {
		resp, err := j.Oracle.Complete(ctx, j.request(compareSystem, messages))
		if err != nil {
			return 0, fmt.Errorf("comparing: %w", err)
		}
		j.logUsage("compare", resp.Usage)

		choice, parseErr := oracle.ParseChoice(resp.Text, 1, 2)
		if parseErr == nil {
			return choice, nil
		}
		if attempt == attemptClarify {
			return 0, fmt.Errorf("comparing after clarification: %w", parseErr)
		}

		// Carry the failed exchange into the clarification attempt so
		// the oracle sees what it answered.
		messages = append(messages,
			oracle.Message{Role: oracle.RoleAssistant, Content: resp.Text},
			oracle.Message{Role: oracle.RoleUser, Content: clarifyPrompt},
		)
	}
}

func comparePrompt(first, second string) string {
	return fmt.Sprintf("Paper 1 abstract:\n%s\n\nPaper 2 abstract:\n%s\n\nWhich paper is the stronger pick? Answer 1 or 2.",
		first, second)
}

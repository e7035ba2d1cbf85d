// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package oracle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AnswerError reports an answer the service did return but which failed
// validation against the declared shape. Distinct from a transport
// error: the service was reachable, the answer was malformed.
type AnswerError struct {
	// Raw is the answer as received.
	Raw string

	// Want describes the declared shape.
	Want string
}

func (e *AnswerError) Error() string {
	raw := e.Raw
	if len(raw) > 80 {
		raw = raw[:80] + "..."
	}
	return fmt.Sprintf("malformed oracle answer %q: want %s", raw, e.Want)
}

// IsAnswerError reports whether err (or anything it wraps) is an
// AnswerError, i.e. a validation failure rather than a transport one.
func IsAnswerError(err error) bool {
	var ae *AnswerError
	return errors.As(err, &ae)
}

// ParseBool validates a boolean-shaped answer. Accepted: "yes" or "no",
// case-insensitive, with surrounding whitespace and trailing sentence
// punctuation tolerated. Anything else is an AnswerError.
func ParseBool(raw string) (bool, error) {
	switch normalize(raw) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, &AnswerError{Raw: raw, Want: `"yes" or "no"`}
}

// ParseChoice validates an answer constrained to a small fixed integer
// set. The answer must be exactly one of the allowed values; prose
// around the number is an AnswerError.
func ParseChoice(raw string, allowed ...int) (int, error) {
	n, err := strconv.Atoi(normalize(raw))
	if err == nil {
		for _, a := range allowed {
			if n == a {
				return n, nil
			}
		}
	}
	return 0, &AnswerError{Raw: raw, Want: fmt.Sprintf("one of %v", allowed)}
}

// ParseText validates a string-shaped answer: non-empty after trimming.
func ParseText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", &AnswerError{Raw: raw, Want: "non-empty text"}
	}
	return text, nil
}

func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimRight(s, ".!")
	return strings.ToLower(strings.TrimSpace(s))
}

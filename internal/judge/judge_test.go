package judge

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CentML/paper-of-the-day/internal/oracle"
	"github.com/CentML/paper-of-the-day/pkg/types"
)

// scriptedOracle returns canned answers in order and records every
// request it saw.
type scriptedOracle struct {
	answers  []string
	errs     []error
	requests []oracle.Request
}

func (s *scriptedOracle) Complete(_ context.Context, req oracle.Request) (oracle.Response, error) {
	i := len(s.requests)
	s.requests = append(s.requests, req)
	if i < len(s.errs) && s.errs[i] != nil {
		return oracle.Response{}, s.errs[i]
	}
	if i >= len(s.answers) {
		return oracle.Response{}, errors.New("scripted oracle: unexpected call")
	}
	return oracle.Response{
		Text:  s.answers[i],
		Usage: oracle.Usage{InputTokens: 10, OutputTokens: 2, Duration: time.Millisecond},
	}, nil
}

func newJudge(o oracle.Client) *Judge {
	return &Judge{
		Oracle: o,
		Config: types.OracleConfig{Model: "test-model", MaxTokens: 64},
	}
}

// --- Classify ---

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"accept", "yes", true},
		{"reject", "No.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &scriptedOracle{answers: []string{tt.answer}}
			got, err := newJudge(o).Classify(context.Background(), "GPU scheduling", "An abstract.")
			if err != nil {
				t.Fatalf("Classify() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyPromptCarriesInterestsAndAbstract(t *testing.T) {
	o := &scriptedOracle{answers: []string{"yes"}}
	_, err := newJudge(o).Classify(context.Background(), "GPU scheduling", "We schedule GPUs.")
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if len(o.requests) != 1 {
		t.Fatalf("oracle called %d times, want 1", len(o.requests))
	}
	req := o.requests[0]
	if req.Model != "test-model" {
		t.Errorf("request model = %q", req.Model)
	}
	if req.System == "" {
		t.Error("request has no system instruction")
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "GPU scheduling") || !strings.Contains(prompt, "We schedule GPUs.") {
		t.Errorf("prompt missing interests or abstract: %q", prompt)
	}
}

func TestClassifyMalformedAnswer(t *testing.T) {
	o := &scriptedOracle{answers: []string{"it depends on the reader"}}
	_, err := newJudge(o).Classify(context.Background(), "x", "y")
	if err == nil {
		t.Fatal("Classify() should fail on a malformed answer")
	}
	if !oracle.IsAnswerError(err) {
		t.Errorf("error %v should be a validation failure", err)
	}
}

func TestClassifyTransportError(t *testing.T) {
	o := &scriptedOracle{errs: []error{errors.New("connection refused")}}
	_, err := newJudge(o).Classify(context.Background(), "x", "y")
	if err == nil {
		t.Fatal("Classify() should propagate the transport error")
	}
	if oracle.IsAnswerError(err) {
		t.Errorf("transport error %v misclassified as validation failure", err)
	}
}

// --- Compare ---

func TestCompareFirstAttempt(t *testing.T) {
	o := &scriptedOracle{answers: []string{"2"}}
	got, err := newJudge(o).Compare(context.Background(), "leader abstract", "challenger abstract")
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	if got != 2 {
		t.Errorf("Compare() = %d, want 2", got)
	}
	if len(o.requests) != 1 {
		t.Errorf("oracle called %d times, want 1", len(o.requests))
	}
}

func TestCompareClarificationSucceeds(t *testing.T) {
	o := &scriptedOracle{answers: []string{"the second paper, clearly", "1"}}
	got, err := newJudge(o).Compare(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	if got != 1 {
		t.Errorf("Compare() = %d, want 1", got)
	}
	if len(o.requests) != 2 {
		t.Fatalf("oracle called %d times, want 2", len(o.requests))
	}

	// The clarification turn carries the failed exchange.
	msgs := o.requests[1].Messages
	if len(msgs) != 3 {
		t.Fatalf("clarification conversation has %d messages, want 3", len(msgs))
	}
	if msgs[1].Role != oracle.RoleAssistant || msgs[1].Content != "the second paper, clearly" {
		t.Errorf("clarification missing the prior answer: %+v", msgs[1])
	}
	if msgs[2].Role != oracle.RoleUser || msgs[2].Content != clarifyPrompt {
		t.Errorf("clarification missing the constraint turn: %+v", msgs[2])
	}
}

func TestCompareGivesUpAfterOneClarification(t *testing.T) {
	o := &scriptedOracle{answers: []string{"hmm", "still hmm", "2"}}
	_, err := newJudge(o).Compare(context.Background(), "a", "b")
	if err == nil {
		t.Fatal("Compare() should fail after the clarification attempt")
	}
	if !oracle.IsAnswerError(err) {
		t.Errorf("error %v should be a validation failure", err)
	}
	if len(o.requests) != 2 {
		t.Errorf("oracle called %d times, want exactly 2 (no unbounded retry)", len(o.requests))
	}
}

func TestCompareTransportError(t *testing.T) {
	o := &scriptedOracle{errs: []error{errors.New("timeout")}}
	_, err := newJudge(o).Compare(context.Background(), "a", "b")
	if err == nil {
		t.Fatal("Compare() should propagate the transport error")
	}
	if oracle.IsAnswerError(err) {
		t.Errorf("transport error %v misclassified as validation failure", err)
	}
}

// --- Summarize ---

func TestSummarize(t *testing.T) {
	o := &scriptedOracle{answers: []string{"Today's pick is a paper about GPU scheduling."}}
	got, err := newJudge(o).Summarize(context.Background(), "full paper text", "upbeat, no hashtags", 120)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if got != "Today's pick is a paper about GPU scheduling." {
		t.Errorf("Summarize() = %q", got)
	}

	prompt := o.requests[0].Messages[0].Content
	if !strings.Contains(prompt, "upbeat, no hashtags") {
		t.Errorf("prompt missing style directives: %q", prompt)
	}
	if !strings.Contains(prompt, "120 words") {
		t.Errorf("prompt missing word budget: %q", prompt)
	}
	if !strings.Contains(prompt, "full paper text") {
		t.Errorf("prompt missing paper content: %q", prompt)
	}
}

func TestSummarizeBlankAnswerIsFatal(t *testing.T) {
	o := &scriptedOracle{answers: []string{"   \n"}}
	_, err := newJudge(o).Summarize(context.Background(), "text", "style", 0)
	if err == nil {
		t.Fatal("Summarize() should fail on a blank answer")
	}
	if !oracle.IsAnswerError(err) {
		t.Errorf("error %v should be a validation failure", err)
	}
}

// --- Usage logging ---

func TestUsageIsLoggedForObservability(t *testing.T) {
	var buf bytes.Buffer
	o := &scriptedOracle{answers: []string{"yes"}}
	j := newJudge(o)
	j.Log = &buf

	if _, err := j.Classify(context.Background(), "x", "y"); err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if !strings.Contains(buf.String(), "classify: in=10 out=2") {
		t.Errorf("usage line missing, got %q", buf.String())
	}
}

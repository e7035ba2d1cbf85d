// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package oracle is the client contract for the external judgment
// service. A decision function sends one role-tagged conversation and
// declares the shape of the answer it will accept; the transport
// (blocking or streaming) is an implementation detail behind Client.
//
// Failures come in two kinds and callers branch on them: a transport
// error means the service was unreachable (timeouts included), while an
// *AnswerError means the service answered but the answer failed shape
// validation.
package oracle

import (
	"context"
	"fmt"
	"time"
)

// Message roles accepted by the service.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one logical judgment request: a fixed system instruction
// plus the conversation so far.
type Request struct {
	Model     string
	System    string
	Messages  []Message
	MaxTokens int
}

// Usage carries token and timing metadata for one request. Purely for
// observability; never used for control flow.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Duration     time.Duration
}

func (u Usage) String() string {
	return fmt.Sprintf("in=%d out=%d dur=%s", u.InputTokens, u.OutputTokens, u.Duration.Round(time.Millisecond))
}

// Response is the service's accumulated answer text plus usage metadata.
// Streaming transports drain the stream fully before returning, so the
// two transports are interchangeable to callers.
type Response struct {
	Text  string
	Usage Usage
}

// Client issues one judgment request and returns the complete answer.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

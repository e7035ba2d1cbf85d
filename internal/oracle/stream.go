// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package oracle

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// StreamClient calls the Messages API in streaming mode and accumulates
// the incremental fragments into one answer. The stream is drained
// fully before Complete returns; callers see the same Response a
// blocking client would produce.
type StreamClient struct {
	APIKey string
	Client *http.Client
}

// streamEvent is one server-sent event from the streaming API. Only the
// fields this client consumes are declared.
type streamEvent struct {
	Type    string `json:"type"`
	Message *struct {
		Usage apiUsage `json:"usage"`
	} `json:"message"`
	Delta *struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Usage *apiUsage `json:"usage"`
}

// Complete sends the conversation and accumulates the streamed answer.
func (c *StreamClient) Complete(ctx context.Context, req Request) (Response, error) {
	start := time.Now()

	resp, err := postMessages(ctx, c.httpClient(), c.APIKey, req, true)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	var (
		text  strings.Builder
		usage Usage
	)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}

		var ev streamEvent
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return Response{}, fmt.Errorf("decoding stream event: %w", err)
		}

		switch ev.Type {
		case "message_start":
			if ev.Message != nil {
				usage.InputTokens = ev.Message.Usage.InputTokens
			}
		case "content_block_delta":
			if ev.Delta != nil && ev.Delta.Type == "text_delta" {
				text.WriteString(ev.Delta.Text)
			}
		case "message_delta":
			if ev.Usage != nil {
				usage.OutputTokens = ev.Usage.OutputTokens
			}
		case "message_stop":
			// Terminal event; keep reading until EOF to drain.
		}
	}
	if err := scanner.Err(); err != nil {
		return Response{}, fmt.Errorf("reading stream: %w", err)
	}

	if text.Len() == 0 {
		return Response{}, fmt.Errorf("oracle stream carried no text content")
	}

	usage.Duration = time.Since(start)
	return Response{Text: text.String(), Usage: usage}, nil
}

func (c *StreamClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

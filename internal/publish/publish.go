// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish delivers the finished summary to an external channel.
// The workflow invokes a Publisher at most once per run, gated by the
// publish.enabled config flag.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/CentML/paper-of-the-day/pkg/types"
)

// Publisher posts one finished text artifact.
type Publisher interface {
	Publish(ctx context.Context, text string) error
}

// Nop is used when posting is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, string) error { return nil }

// Webhook delivers the summary as a JSON POST to a configured URL.
type Webhook struct {
	Client *http.Client
	Config types.PublishConfig
}

// payload is the webhook request body.
type payload struct {
	Text string `json:"text"`
}

// Publish posts the text. Any non-2xx response is an error.
func (w *Webhook) Publish(ctx context.Context, text string) error {
	if w.Config.WebhookURL == "" {
		return fmt.Errorf("publish: no webhook URL configured")
	}

	body, err := json.Marshal(payload{Text: text})
	if err != nil {
		return fmt.Errorf("publish: marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.Config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("publish: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.Config.UserAgent != "" {
		req.Header.Set("User-Agent", w.Config.UserAgent)
	}

	client := w.Client
	if client == nil {
		client = &http.Client{Timeout: w.Config.Timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("publish: posting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("publish: webhook returned HTTP %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

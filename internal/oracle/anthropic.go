// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// messagesAPIURL is the Messages API endpoint. Package-level var for
// test substitution.
var messagesAPIURL = "https://api.anthropic.com/v1/messages"

const anthropicVersion = "2023-06-01"

const defaultMaxTokens = 1024

// MessagesClient calls the Messages API in blocking mode: one request,
// one structured response.
type MessagesClient struct {
	APIKey string
	Client *http.Client
}

// apiRequest is the request body for the Messages API.
type apiRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
	Stream    bool      `json:"stream,omitempty"`
}

// apiResponse is the blocking response body.
type apiResponse struct {
	Content []contentBlock `json:"content"`
	Usage   apiUsage       `json:"usage"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Complete sends the conversation and returns the full answer.
func (c *MessagesClient) Complete(ctx context.Context, req Request) (Response, error) {
	start := time.Now()

	resp, err := postMessages(ctx, c.httpClient(), c.APIKey, req, false)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Response{}, fmt.Errorf("decoding oracle response: %w", err)
	}

	var text string
	for _, block := range body.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return Response{}, fmt.Errorf("oracle returned no text content")
	}

	return Response{
		Text: text,
		Usage: Usage{
			InputTokens:  body.Usage.InputTokens,
			OutputTokens: body.Usage.OutputTokens,
			Duration:     time.Since(start),
		},
	}, nil
}

func (c *MessagesClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

// postMessages builds and sends one Messages API request, shared by the
// blocking and streaming clients. Non-200 responses are transport
// errors.
func postMessages(ctx context.Context, client *http.Client, apiKey string, req Request, stream bool) (*http.Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	body := apiRequest{
		Model:     req.Model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages:  req.Messages,
		Stream:    stream,
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, messagesAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	if stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling oracle: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("oracle returned HTTP %d: %s", resp.StatusCode, string(respBody))
	}
	return resp, nil
}

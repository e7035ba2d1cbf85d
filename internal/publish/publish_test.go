// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CentML/paper-of-the-day/pkg/types"
)

func TestWebhookPublish(t *testing.T) {
	var got payload
	var contentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	p := &Webhook{
		Client: ts.Client(),
		Config: types.PublishConfig{WebhookURL: ts.URL},
	}
	err := p.Publish(context.Background(), "Today's paper is great.")
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Today's paper is great.", got.Text)
}

func TestWebhookPublishNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer ts.Close()

	p := &Webhook{Client: ts.Client(), Config: types.PublishConfig{WebhookURL: ts.URL}}
	err := p.Publish(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestWebhookPublishNoURL(t *testing.T) {
	p := &Webhook{}
	err := p.Publish(context.Background(), "text")
	require.Error(t, err)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/CentML/paper-of-the-day/internal/httputil"
	"github.com/CentML/paper-of-the-day/pkg/types"
)

// arXiv page bases. Declared as vars so tests can substitute an
// httptest server.
var (
	arxivAbsBase  = "https://arxiv.org/abs"
	arxivHTMLBase = "https://arxiv.org/html"
)

// ArxivFetcher resolves paper content from arXiv: the abstract from the
// abstract-view page, the full text from the HTML rendering.
type ArxivFetcher struct {
	Client *http.Client
	Config types.HTTPConfig
}

// Abstract fetches and parses the paper's abstract-view page.
func (f *ArxivFetcher) Abstract(ctx context.Context, id string) (string, error) {
	doc, err := f.get(ctx, arxivAbsBase+"/"+id)
	if err != nil {
		return "", err
	}

	block := doc.Find("blockquote.abstract").First()
	if block.Length() == 0 {
		return "", fmt.Errorf("abstract page for %s has no abstract block", id)
	}

	// The block starts with a "Abstract:" descriptor span.
	text := strings.TrimSpace(block.Text())
	text = strings.TrimSpace(strings.TrimPrefix(text, "Abstract:"))
	if text == "" {
		return "", fmt.Errorf("abstract page for %s has an empty abstract block", id)
	}
	return text, nil
}

// Text fetches the paper's HTML rendering and returns its visible text.
func (f *ArxivFetcher) Text(ctx context.Context, id string) (string, error) {
	doc, err := f.get(ctx, arxivHTMLBase+"/"+id)
	if err != nil {
		return "", err
	}

	body := doc.Find("article").First()
	if body.Length() == 0 {
		body = doc.Find("body").First()
	}
	text := strings.TrimSpace(body.Text())
	if text == "" {
		return "", fmt.Errorf("HTML rendering for %s has no text content", id)
	}
	return text, nil
}

func (f *ArxivFetcher) get(ctx context.Context, url string) (*goquery.Document, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: f.Config.Timeout}
	}
	return httputil.GetDocument(ctx, client, url, f.Config.UserAgent)
}

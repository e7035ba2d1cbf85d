// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow runs one full selection: extract the day's
// candidates, classify each for relevance, fold the relevant ones to a
// single winner, summarize it, and hand the summary to the publisher.
// Everything is strictly sequential; each oracle round trip completes
// before the next step begins.
package workflow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/CentML/paper-of-the-day/internal/httputil"
	"github.com/CentML/paper-of-the-day/internal/judge"
	"github.com/CentML/paper-of-the-day/internal/listing"
	"github.com/CentML/paper-of-the-day/internal/paper"
	"github.com/CentML/paper-of-the-day/internal/publish"
	"github.com/CentML/paper-of-the-day/internal/tournament"
	"github.com/CentML/paper-of-the-day/pkg/types"
)

// Recorder persists finished run records. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, rec types.RunRecord) error
}

// Workflow wires the selection components together for one run.
type Workflow struct {
	Extractor *listing.Extractor
	Fetcher   paper.ContentFetcher
	Judge     *judge.Judge
	Publisher publish.Publisher
	Recorder  Recorder

	// Client fetches the catalog listing page.
	Client *http.Client

	Config types.Config

	// Log receives progress lines. Nil discards.
	Log io.Writer
}

// Run selects the paper of the day for target. An empty listing or an
// all-rejected candidate set is not an error: the returned record has
// no winner. Fatal failures (catalog unreachable, paper content
// unretrievable, tournament abort, summarization failure, publish
// failure) return an error alongside the partial record.
func (w *Workflow) Run(ctx context.Context, target time.Time) (types.RunRecord, error) {
	rec := types.RunRecord{
		Date:      target.Format("2006-01-02"),
		CreatedAt: time.Now(),
	}

	w.logf("fetching listing %s", w.Config.Listing.CatalogURL)
	doc, err := httputil.GetDocument(ctx, w.client(), w.Config.Listing.CatalogURL, w.Config.Listing.UserAgent)
	if err != nil {
		return rec, fmt.Errorf("retrieving catalog: %w", err)
	}

	ids := w.Extractor.Extract(doc, target)
	rec.Candidates = len(ids)
	if len(ids) == 0 {
		w.logf("no publications found for %s", rec.Date)
		return rec, w.finish(ctx, rec)
	}
	w.logf("extracted %d candidates for %s", len(ids), rec.Date)

	tr := tournament.New(&paperComparator{judge: w.Judge})

	for i, id := range ids {
		if i > 0 {
			if err := w.pause(ctx); err != nil {
				return rec, err
			}
		}

		p := paper.New(id, w.Fetcher)
		abstract, err := p.Abstract(ctx)
		if err != nil {
			return rec, err
		}

		relevant, err := w.Judge.Classify(ctx, w.Config.Selection.Interests, abstract)
		if err != nil {
			// Conservative exclusion: a candidate we could not judge
			// never aborts the run.
			w.logf("excluding %s: %v", id, err)
			continue
		}
		if !relevant {
			w.logf("%s: not relevant", id)
			continue
		}
		rec.Relevant++

		if err := tr.Advance(ctx, p); err != nil {
			return rec, err
		}
		w.logf("%s: relevant, leader is now %s", id, tr.Leader().ID())
	}

	winner := tr.Leader()
	if winner == nil {
		w.logf("no relevant candidate on %s", rec.Date)
		return rec, w.finish(ctx, rec)
	}
	rec.WinnerID = winner.ID()
	w.logf("winner: %s (%d relevant of %d candidates)", rec.WinnerID, rec.Relevant, rec.Candidates)

	text, err := winner.Text(ctx)
	if err != nil {
		return rec, err
	}

	summary, err := w.Judge.Summarize(ctx, text, w.Config.Selection.SummaryStyle, w.Config.Selection.SummaryWords)
	if err != nil {
		return rec, fmt.Errorf("summarizing winner %s: %w", rec.WinnerID, err)
	}
	rec.Summary = summary

	if w.Config.Publish.Enabled {
		if err := w.Publisher.Publish(ctx, summary); err != nil {
			return rec, fmt.Errorf("publishing winner %s: %w", rec.WinnerID, err)
		}
		rec.Posted = true
		w.logf("published summary for %s", rec.WinnerID)
	}

	return rec, w.finish(ctx, rec)
}

// finish persists the record and writes the per-run artifact.
func (w *Workflow) finish(ctx context.Context, rec types.RunRecord) error {
	if w.Recorder != nil {
		if err := w.Recorder.Record(ctx, rec); err != nil {
			return err
		}
	}
	if w.Config.OutputDir != "" {
		if err := writeArtifact(w.Config.OutputDir, rec); err != nil {
			return err
		}
	}
	return nil
}

// pause applies the inter-candidate pacing delay. Policy only; zero
// skips the wait entirely.
func (w *Workflow) pause(ctx context.Context) error {
	delay := w.Config.Selection.CandidateDelay
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

func (w *Workflow) client() *http.Client {
	if w.Client != nil {
		return w.Client
	}
	return &http.Client{Timeout: w.Config.Listing.Timeout}
}

func (w *Workflow) logf(format string, args ...any) {
	if w.Log == nil {
		return
	}
	fmt.Fprintf(w.Log, format+"\n", args...)
}

// writeArtifact marshals the record to outputDir/<date>.yaml.
func writeArtifact(outputDir string, rec types.RunRecord) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling run record: %w", err)
	}
	path := filepath.Join(outputDir, rec.Date+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run record: %w", err)
	}
	return nil
}

// paperComparator resolves both abstracts (memoized on the entities)
// and delegates the pairwise decision to the judge.
type paperComparator struct {
	judge *judge.Judge
}

func (c *paperComparator) Compare(ctx context.Context, first, second *paper.Paper) (int, error) {
	firstAbstract, err := first.Abstract(ctx)
	if err != nil {
		return 0, err
	}
	secondAbstract, err := second.Abstract(ctx)
	if err != nil {
		return 0, err
	}
	return c.judge.Compare(ctx, firstAbstract, secondAbstract)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paper models one candidate paper. Content is resolved lazily
// through a ContentFetcher and memoized for the entity's lifetime.
package paper

import (
	"context"
	"fmt"
)

// ContentFetcher resolves a paper's content on demand. Implementations
// fail with a transport or parse error; they never substitute empty
// content for a failed retrieval.
type ContentFetcher interface {
	// Abstract returns the paper's short summary.
	Abstract(ctx context.Context, id string) (string, error)

	// Text returns the paper's full content.
	Text(ctx context.Context, id string) (string, error)
}

// field is a lazy value with an explicit resolved tag, so "not yet
// fetched" and "fetched as empty" stay distinguishable.
type field struct {
	value    string
	resolved bool
}

// Paper is one candidate identified by its catalog identifier. The
// entity exclusively owns its cached fields; each resolves at most once.
type Paper struct {
	id      string
	fetcher ContentFetcher

	abstract field
	text     field
}

// New returns a Paper with both content fields unresolved.
func New(id string, fetcher ContentFetcher) *Paper {
	return &Paper{id: id, fetcher: fetcher}
}

// ID returns the paper's immutable identifier.
func (p *Paper) ID() string { return p.id }

// Abstract returns the paper's short summary, fetching it on first
// call. A retrieval failure propagates and is not cached, so a later
// call retries.
func (p *Paper) Abstract(ctx context.Context) (string, error) {
	if p.abstract.resolved {
		return p.abstract.value, nil
	}
	v, err := p.fetcher.Abstract(ctx, p.id)
	if err != nil {
		return "", fmt.Errorf("resolving abstract of %s: %w", p.id, err)
	}
	p.abstract = field{value: v, resolved: true}
	return v, nil
}

// Text returns the paper's full content, fetching it on first call
// under the same at-most-once discipline as Abstract.
func (p *Paper) Text(ctx context.Context) (string, error) {
	if p.text.resolved {
		return p.text.value, nil
	}
	v, err := p.fetcher.Text(ctx, p.id)
	if err != nil {
		return "", fmt.Errorf("resolving text of %s: %w", p.id, err)
	}
	p.text = field{value: v, resolved: true}
	return v, nil
}

// Resolve forces both content fields, e.g. before serializing.
func (p *Paper) Resolve(ctx context.Context) error {
	if _, err := p.Abstract(ctx); err != nil {
		return err
	}
	if _, err := p.Text(ctx); err != nil {
		return err
	}
	return nil
}

// Snapshot is a transportable representation of a Paper: the identifier
// plus whichever content fields have been resolved. A nil field means
// unresolved; a non-nil empty string means resolved-as-empty.
type Snapshot struct {
	ID       string  `json:"id" yaml:"id"`
	Abstract *string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Text     *string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Snapshot captures the entity's current state without forcing
// resolution.
func (p *Paper) Snapshot() Snapshot {
	s := Snapshot{ID: p.id}
	if p.abstract.resolved {
		v := p.abstract.value
		s.Abstract = &v
	}
	if p.text.resolved {
		v := p.text.value
		s.Text = &v
	}
	return s
}

// Restore reconstructs a Paper from a snapshot. Restored fields count
// as resolved and are never re-fetched.
func Restore(s Snapshot, fetcher ContentFetcher) *Paper {
	p := New(s.ID, fetcher)
	if s.Abstract != nil {
		p.abstract = field{value: *s.Abstract, resolved: true}
	}
	if s.Text != nil {
		p.text = field{value: *s.Text, resolved: true}
	}
	return p
}

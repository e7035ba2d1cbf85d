// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing extracts one day's paper identifiers from a catalog
// listing page. The page is a flat document: a navigation region links
// to each retained day, and the body interleaves date headings with the
// paper entries published under them.
package listing

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/CentML/paper-of-the-day/pkg/types"
)

// Defaults match the arXiv listing pages.
const (
	defaultNavSelector     = "ul li a"
	defaultHeadingSelector = "h3"
	defaultEntrySelector   = "dt"
	defaultAbstractPrefix  = "/abs/"
	defaultDateLayout      = "2 Jan 2006"
)

// Extractor locates a target date's entries inside one listing document.
type Extractor struct {
	cfg types.ListingConfig
}

// NewExtractor returns an Extractor with unset selectors filled from the
// arXiv defaults.
func NewExtractor(cfg types.ListingConfig) *Extractor {
	if cfg.NavSelector == "" {
		cfg.NavSelector = defaultNavSelector
	}
	if cfg.HeadingSelector == "" {
		cfg.HeadingSelector = defaultHeadingSelector
	}
	if cfg.EntrySelector == "" {
		cfg.EntrySelector = defaultEntrySelector
	}
	if cfg.AbstractPrefix == "" {
		cfg.AbstractPrefix = defaultAbstractPrefix
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = defaultDateLayout
	}
	return &Extractor{cfg: cfg}
}

// Extract returns the identifiers published on target, in document
// order. An empty result is not an error: it means the navigation has
// no entry for that day (nothing published, or the date fell out of the
// catalog's retained window), or the page was truncated before the
// day's section. Duplicates are preserved as found.
func (e *Extractor) Extract(doc *goquery.Document, target time.Time) []string {
	if !e.navHasDate(doc, target) {
		return nil
	}

	// The heading must carry the same date phrase the navigation entry
	// led with. Both are rendered from the parsed triple through one
	// layout, so a trailing "(showing N of M entries)" on the
	// navigation side can never leak into the match.
	phrase := target.Format(e.cfg.DateLayout)

	heading := e.findHeading(doc, phrase)
	if heading == nil {
		return nil
	}

	var ids []string
	for sib := heading.Next(); sib.Length() > 0; sib = sib.Next() {
		if sib.Is(e.cfg.HeadingSelector) {
			// Next day's section starts here.
			break
		}
		if !sib.Is(e.cfg.EntrySelector) {
			continue
		}
		if id, ok := e.entryID(sib); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// navHasDate reports whether any navigation entry's leading date phrase
// names the target day. Entries with malformed date text are skipped.
func (e *Extractor) navHasDate(doc *goquery.Document, target time.Time) bool {
	found := false
	doc.Find(e.cfg.NavSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		key, ok := parseDatePhrase(s.Text())
		if ok && key.matches(target) {
			found = true
			return false
		}
		return true
	})
	return found
}

// findHeading returns the first content heading containing phrase, or
// nil if the page has none.
func (e *Extractor) findHeading(doc *goquery.Document, phrase string) *goquery.Selection {
	var heading *goquery.Selection
	doc.Find(e.cfg.HeadingSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), phrase) {
			heading = s
			return false
		}
		return true
	})
	return heading
}

// entryID pulls the identifier from an entry's abstract-view link: the
// trailing path segment of the first href under the configured prefix.
// Entries without such a link yield ok=false and are skipped.
func (e *Extractor) entryID(entry *goquery.Selection) (string, bool) {
	var id string
	entry.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !strings.HasPrefix(href, e.cfg.AbstractPrefix) {
			return true
		}
		seg := strings.Trim(strings.TrimPrefix(href, e.cfg.AbstractPrefix), "/")
		if i := strings.LastIndex(seg, "/"); i >= 0 {
			seg = seg[i+1:]
		}
		if seg == "" {
			return true
		}
		id = seg
		return false
	})
	return id, id != ""
}

package listing

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/CentML/paper-of-the-day/pkg/types"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// twoDayPage has two dated sections; the 14 Mar navigation entry carries
// a trailing parenthetical that must not affect matching.
const twoDayPage = `<html><body>
<div id="dlpage">
<ul>
<li><a href="/list/cs.LG/2024-03">14 Mar 2024 (showing 50 of 50 entries)</a></li>
<li><a href="/list/cs.LG/2024-03">13 Mar 2024</a></li>
</ul>
<dl id="articles">
<h3>Thu, 14 Mar 2024 (showing first 50 of 50 entries )</h3>
<dt><a href="/abs/2403.09001" title="Abstract">arXiv:2403.09001</a></dt>
<dd><div class="meta">Paper A</div></dd>
<dt><a href="/abs/2403.09002" title="Abstract">arXiv:2403.09002</a></dt>
<dd><div class="meta">Paper B</div></dd>
<dt><span class="list-identifier">withdrawn, no abstract link</span></dt>
<dd><div class="meta">Paper without link</div></dd>
<dt><a href="/abs/2403.09003" title="Abstract">arXiv:2403.09003</a></dt>
<dd><div class="meta">Paper C</div></dd>
<h3>Wed, 13 Mar 2024</h3>
<dt><a href="/abs/2403.08001" title="Abstract">arXiv:2403.08001</a></dt>
<dd><div class="meta">Previous day paper</div></dd>
</dl>
</div>
</body></html>`

func TestExtractPreservesOrderAndSkipsLinklessEntries(t *testing.T) {
	e := NewExtractor(types.ListingConfig{})
	got := e.Extract(mustDoc(t, twoDayPage), date(2024, time.March, 14))

	want := []string{"2403.09001", "2403.09002", "2403.09003"}
	if len(got) != len(want) {
		t.Fatalf("Extract() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Extract()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractStopsAtNextHeading(t *testing.T) {
	e := NewExtractor(types.ListingConfig{})
	got := e.Extract(mustDoc(t, twoDayPage), date(2024, time.March, 14))

	for _, id := range got {
		if id == "2403.08001" {
			t.Fatalf("Extract() leaked entry %q from the following day's section", id)
		}
	}
}

func TestExtractSecondSection(t *testing.T) {
	e := NewExtractor(types.ListingConfig{})
	got := e.Extract(mustDoc(t, twoDayPage), date(2024, time.March, 13))

	if len(got) != 1 || got[0] != "2403.08001" {
		t.Fatalf("Extract() = %v, want [2403.08001]", got)
	}
}

func TestExtractNoNavigationMatch(t *testing.T) {
	e := NewExtractor(types.ListingConfig{})
	// Date outside the retained window: navigation has no entry for it.
	got := e.Extract(mustDoc(t, twoDayPage), date(2024, time.March, 1))

	if len(got) != 0 {
		t.Fatalf("Extract() = %v, want empty", got)
	}
}

func TestExtractTruncatedPage(t *testing.T) {
	// Navigation advertises 12 Mar but the body was cut before its section.
	const page = `<html><body>
<ul><li><a href="/list/cs.LG/2024-03">12 Mar 2024 (showing 10 of 10 entries)</a></li></ul>
<dl>
<h3>Wed, 13 Mar 2024</h3>
<dt><a href="/abs/2403.08001">arXiv:2403.08001</a></dt>
<dd><div>other day</div></dd>
</dl>
</body></html>`

	e := NewExtractor(types.ListingConfig{})
	got := e.Extract(mustDoc(t, page), date(2024, time.March, 12))

	if len(got) != 0 {
		t.Fatalf("Extract() = %v, want empty", got)
	}
}

func TestExtractSingleDigitDay(t *testing.T) {
	const page = `<html><body>
<ul><li><a href="/list/cs.LG/2024-03">1 Mar 2024 (showing 2 of 2 entries)</a></li></ul>
<dl>
<h3>Fri, 1 Mar 2024</h3>
<dt><a href="/abs/2403.00101">arXiv:2403.00101</a></dt>
<dd><div>paper</div></dd>
</dl>
</body></html>`

	e := NewExtractor(types.ListingConfig{})
	got := e.Extract(mustDoc(t, page), date(2024, time.March, 1))

	if len(got) != 1 || got[0] != "2403.00101" {
		t.Fatalf("Extract() = %v, want [2403.00101]", got)
	}
}

func TestExtractMalformedNavEntriesAreSkipped(t *testing.T) {
	const page = `<html><body>
<ul>
<li><a href="/list/cs.LG/all">All listings</a></li>
<li><a href="/list/cs.LG/2024-03">99 Foo 2024</a></li>
<li><a href="/list/cs.LG/2024-03">14 Mar 2024</a></li>
</ul>
<dl>
<h3>Thu, 14 Mar 2024</h3>
<dt><a href="/abs/2403.09001">arXiv:2403.09001</a></dt>
<dd><div>paper</div></dd>
</dl>
</body></html>`

	e := NewExtractor(types.ListingConfig{})
	got := e.Extract(mustDoc(t, page), date(2024, time.March, 14))

	if len(got) != 1 || got[0] != "2403.09001" {
		t.Fatalf("Extract() = %v, want [2403.09001]", got)
	}
}

func TestExtractKeepsDuplicates(t *testing.T) {
	const page = `<html><body>
<ul><li><a href="/list/cs.LG/2024-03">14 Mar 2024</a></li></ul>
<dl>
<h3>Thu, 14 Mar 2024</h3>
<dt><a href="/abs/2403.09001">arXiv:2403.09001</a></dt>
<dd><div>paper</div></dd>
<dt><a href="/abs/2403.09001">arXiv:2403.09001</a></dt>
<dd><div>same paper listed twice</div></dd>
</dl>
</body></html>`

	e := NewExtractor(types.ListingConfig{})
	got := e.Extract(mustDoc(t, page), date(2024, time.March, 14))

	if len(got) != 2 {
		t.Fatalf("Extract() = %v, want the duplicate preserved", got)
	}
}

func TestExtractVersionedAbstractLink(t *testing.T) {
	const page = `<html><body>
<ul><li><a href="/list/cs.LG/2024-03">14 Mar 2024</a></li></ul>
<dl>
<h3>Thu, 14 Mar 2024</h3>
<dt><a href="/abs/2403.09001v2">arXiv:2403.09001v2</a></dt>
<dd><div>paper</div></dd>
</dl>
</body></html>`

	e := NewExtractor(types.ListingConfig{})
	got := e.Extract(mustDoc(t, page), date(2024, time.March, 14))

	// The identifier is the trailing path segment as published.
	if len(got) != 1 || got[0] != "2403.09001v2" {
		t.Fatalf("Extract() = %v, want [2403.09001v2]", got)
	}
}

func TestParseDatePhrase(t *testing.T) {
	tests := []struct {
		name string
		text string
		want dateKey
		ok   bool
	}{
		{"plain", "14 Mar 2024", dateKey{2024, time.March, 14}, true},
		{"parenthetical count", "14 Mar 2024 (showing 50 of 50 entries)", dateKey{2024, time.March, 14}, true},
		{"single digit day", "1 Mar 2024", dateKey{2024, time.March, 1}, true},
		{"surrounding whitespace", "  14 Mar 2024  ", dateKey{2024, time.March, 14}, true},
		{"unknown month", "14 Foo 2024", dateKey{}, false},
		{"day out of range", "99 Mar 2024", dateKey{}, false},
		{"two digit year", "14 Mar 24", dateKey{}, false},
		{"too short", "14 Mar", dateKey{}, false},
		{"not a date", "All listings", dateKey{}, false},
		{"empty", "", dateKey{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDatePhrase(tt.text)
			if ok != tt.ok {
				t.Fatalf("parseDatePhrase(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseDatePhrase(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

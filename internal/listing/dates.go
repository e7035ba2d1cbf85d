// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"strconv"
	"strings"
	"time"
)

// monthsByName maps the catalog's abbreviated month names to months.
var monthsByName = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// dateKey is the (year, month, day) triple a navigation entry and a
// content heading must agree on to refer to the same listing day.
type dateKey struct {
	year  int
	month time.Month
	day   int
}

// matches reports whether the key names the same calendar day as t.
func (k dateKey) matches(t time.Time) bool {
	return k.year == t.Year() && k.month == t.Month() && k.day == t.Day()
}

// parseDatePhrase parses the leading "<day> <Mon> <year>" of a
// navigation entry's text, e.g. "14 Mar 2024 (showing 50 of 50 entries)".
// Anything after the year, such as a parenthetical entry count, is
// ignored. Returns false for text that does not start with a date
// phrase; callers skip such entries rather than fail.
func parseDatePhrase(text string) (dateKey, bool) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return dateKey{}, false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return dateKey{}, false
	}

	month, ok := monthsByName[fields[1]]
	if !ok {
		return dateKey{}, false
	}

	if len(fields[2]) != 4 {
		return dateKey{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return dateKey{}, false
	}

	return dateKey{year: year, month: month, day: day}, true
}

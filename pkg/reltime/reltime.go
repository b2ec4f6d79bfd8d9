// Copyright (c) 2026 Folio. All rights reserved.

/*
Package reltime renders publication timestamps as short relative strings.

Rules:

  - under 24 hours: "{h}h ago" / "{h}ч назад" (h >= 1)
  - under 7 days:   "{d}d ago" / "{d}д назад" (d >= 1)
  - otherwise:      the absolute date as dd.MM.yyyy

Russian strings are used when the base code of the requested locale is "ru";
every other locale gets English.
*/
package reltime

import (
	"fmt"
	"strings"
	"time"

	"github.com/folioworks/folio/pkg/locale"
)

const (
	day  = 24 * time.Hour
	week = 7 * day

	// DateLayout is the absolute date format used past one week.
	DateLayout = "02.01.2006"
)

// layouts are the accepted ISO-8601 forms, tried in order.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse reads an ISO-8601 timestamp. Timestamps without an offset are UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("reltime: unrecognised timestamp %q", value)
}

// Formatter renders relative times against a clock.
type Formatter struct {
	// Now returns the evaluation time. It is called on every Format.
	Now func() time.Time
}

// Format renders the ISO timestamp for the requested locale.
// It returns "" when the timestamp does not parse.
func (f Formatter) Format(isoTimestamp, requested string) string {
	published, err := Parse(isoTimestamp)
	if err != nil {
		return ""
	}
	return f.FormatTime(published, requested)
}

// FormatTime renders an already parsed timestamp.
func (f Formatter) FormatTime(published time.Time, requested string) string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	elapsed := now().Sub(published)
	russian := strings.ToLower(locale.Base(requested)) == locale.Russian

	switch {
	case elapsed < day:
		hours := max(int(elapsed/time.Hour), 1)
		if russian {
			return fmt.Sprintf("%dч назад", hours)
		}
		return fmt.Sprintf("%dh ago", hours)

	case elapsed < week:
		days := max(int(elapsed/day), 1)
		if russian {
			return fmt.Sprintf("%dд назад", days)
		}
		return fmt.Sprintf("%dd ago", days)

	default:
		return published.Format(DateLayout)
	}
}

// Format renders the timestamp against the wall clock.
func Format(isoTimestamp, requested string) string {
	return Formatter{}.Format(isoTimestamp, requested)
}

// Package dates parses the free-form date strings stored on expense
// records. Parsing is total: a value that cannot be interpreted reports
// ok=false and the record drops out of date-dependent operations.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// fallbackLayouts are tried in order for anything the 10-character rule
// does not cover.
var fallbackLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Parse interprets raw as a calendar date. A 10-character string is read
// as YYYY-MM-DD when its first dash-separated segment is an integer
// greater than 31 (it cannot be a day of month), and as DD-MM-YYYY
// otherwise. Anything else goes through the fallback layout list.
func Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if len(s) == 10 {
		if first, _, found := strings.Cut(s, "-"); found {
			if n, err := strconv.Atoi(first); err == nil {
				layout := "02-01-2006"
				if n > 31 {
					layout = "2006-01-02"
				}
				if t, err := time.Parse(layout, s); err == nil {
					return t, true
				}
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

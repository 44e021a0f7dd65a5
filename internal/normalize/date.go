package normalize

import (
	"fmt"
	"strings"
	"time"
)

// dayFirstFormats are tried first for statements that use day/month ordering.
var dayFirstFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"02/01/06",
	"2/1/06",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
}

// monthFirstFormats cover US ordering and unambiguous ISO forms.
var monthFirstFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"01/02/06",
	"Jan 2 2006",
	"Jan 02 2006",
	"Jan 2, 2006",
	"Jan 02, 2006",
}

// ParseDate parses a raw date cell. dayFirst controls which ordering wins for
// ambiguous numeric forms like 03/04/2024.
func ParseDate(raw string, dayFirst bool) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	first, second := dayFirstFormats, monthFirstFormats
	if !dayFirst {
		first, second = monthFirstFormats, dayFirstFormats
	}
	for _, layout := range first {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range second {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q", raw)
}

// LooksDate reports whether a raw cell parses as a date.
func LooksDate(raw string) bool {
	_, err := ParseDate(raw, true)
	return err == nil
}

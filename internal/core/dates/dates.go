// Package dates parses the performance dates contributors type in
package dates

import (
	"fmt"
	"time"
)

// Layout is the only accepted input shape
const Layout = "2006-01-02"

// ParsePerformanceDate parses raw as a strict YYYY-MM-DD calendar date
// time.Parse enforces calendar validity so 2024-02-30 and month 13 fail
func ParsePerformanceDate(raw string) (time.Time, error) {
	d, err := time.Parse(Layout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("Invalid date %q; expected YYYY-MM-DD", raw)
	}
	return d, nil
}

// Format renders a date back to the wire shape
func Format(d time.Time) string { return d.Format(Layout) }

// Package duration parses the short age strings used by `lned log --older-than`.
//
// "12h", "7d", "4w" and "3m" read more naturally on a command line than Go's
// time.Duration syntax, which has no unit above hours.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const day = 24 * time.Hour

var pattern = regexp.MustCompile(`^(\d+)([hdwm])$`)

var units = map[string]time.Duration{
	"h": time.Hour,
	"d": day,
	"w": 7 * day,
	"m": 30 * day, // a month is taken as 30 days
}

// Parse parses Nh (hours), Nd (days), Nw (weeks) or Nm (months).
func Parse(s string) (time.Duration, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q (use e.g. 12h, 7d, 4w or 3m)", s)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return time.Duration(n) * units[m[2]], nil
}

// Before returns the instant d before now.
func Before(now time.Time, s string) (time.Time, error) {
	d, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}

// Package datekey implements the canonical YYYY-MM-DD date key used as the
// only date representation in the tracker. Keys carry no timezone or instant
// semantics; they name a local calendar day.
package datekey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidKey = errors.New("invalid date key")

// Date is a parsed date key. Month is 1-based, matching time.Month.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Make builds a zero-padded YYYY-MM-DD key.
func Make(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Parse splits a key into its components. Anything that is not exactly three
// numeric dash-separated parts yields ErrInvalidKey; callers are expected to
// degrade softly (blank labels, sort-last) rather than abort.
func Parse(key string) (Date, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		nums[i] = n
	}

	return Date{Year: nums[0], Month: time.Month(nums[1]), Day: nums[2]}, nil
}

// FormatDisplay renders a short human label such as "Feb 16".
// Empty or unparsable keys render as "".
func FormatDisplay(key string) string {
	if key == "" {
		return ""
	}
	d, err := Parse(key)
	if err != nil {
		return ""
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local).Format("Jan 2")
}

// FormatReadable renders a long human label such as "February 16, 2026".
// Empty or unparsable keys render as "".
func FormatReadable(key string) string {
	if key == "" {
		return ""
	}
	d, err := Parse(key)
	if err != nil {
		return ""
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local).Format("January 2, 2006")
}

// IsInMonth reports whether the key falls in the given year and month.
// The day component is ignored; unparsable keys are never in any month.
func IsInMonth(key string, year int, month time.Month) bool {
	d, err := Parse(key)
	if err != nil {
		return false
	}
	return d.Year == year && d.Month == month
}

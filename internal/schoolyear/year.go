// Package schoolyear converts calendar dates and SIS term identifiers into
// academic-year labels of the form "YY-YY".
package schoolyear

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidYears is every academic year the downstream platform accepts.
// Extend it each year when the new label goes live.
var ValidYears = []string{
	"01-02", "02-03", "03-04", "04-05", "05-06",
	"06-07", "07-08", "08-09", "09-10", "10-11",
	"11-12", "12-13", "13-14", "14-15", "15-16", "16-17",
}

// IsValid reports whether label is a recognized academic year.
func IsValid(label string) bool {
	for _, y := range ValidYears {
		if y == label {
			return true
		}
	}
	return false
}

// FormatAbbr renders the internal year number n as a "YY-YY" label. The
// numbering is anchored so that n=11 (a July-2001-or-later date) renders as
// "01-02".
func FormatAbbr(n int) string {
	return fmt.Sprintf("%02d-%02d", (n+90)%100, (n+91)%100)
}

// DateToYear resolves a raw date field to the academic year it falls in.
// July and later count toward the next academic year. Unlike the date
// cleaning helpers this is fatal on a bad date: callers depend on the year
// for record placement and have no reasonable fallback.
func DateToYear(raw string) (string, error) {
	d, ok := ParseDate(raw)
	if !ok {
		return "", fmt.Errorf("schoolyear: cannot parse date %q", raw)
	}
	n := d.Year() - 1991
	if d.Month() >= time.July {
		n++
	}
	return FormatAbbr(n), nil
}

// TermToYear resolves a numeric term id to its academic-year label. Term ids
// encode year*100 + subterm, so the year number is the id divided by 100.
func TermToYear(termID string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(termID))
	if err != nil {
		return "", fmt.Errorf("schoolyear: bad term id %q", termID)
	}
	return FormatAbbr(n / 100), nil
}

// YearToTerm is the inverse of TermToYear for full-year terms: "10-11"
// becomes "2000". Used when a term id has to be synthesized for a year.
func YearToTerm(label string) string {
	first, _, _ := strings.Cut(label, "-")
	n, err := strconv.Atoi(first)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02d00", (n+10)%100)
}

// AutoYear picks the academic year in effect on the given day, rolling over
// to the next year on August 15.
func AutoYear(today time.Time) string {
	year := today.Year()
	if today.Month() > time.August || (today.Month() == time.August && today.Day() >= 15) {
		year++
	}
	return fmt.Sprintf("%02d-%02d", (year-1)%100, year%100)
}

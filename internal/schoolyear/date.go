package schoolyear

import (
	"fmt"
	"strings"
	"time"
)

// SplitDate parses a raw SIS date field. Accepted shapes are "mm/dd/yyyy"
// and "mm/yyyy" (day defaults to 1), with "-" treated as "/". Anything after
// the first whitespace (e.g. a time-of-day suffix) is ignored. Two-digit
// years below 20 land in the 2000s, the rest in the 1900s. Returns ok=false
// for anything unparseable or out of range; callers decide whether that is
// fatal.
func SplitDate(raw string) (month, day, year int, ok bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "-", "/"))
	if s == "" {
		return 0, 0, 0, false
	}
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, "/")
	switch len(parts) {
	case 3:
		month, ok = atoiStrict(parts[0])
		if !ok {
			return 0, 0, 0, false
		}
		day, ok = atoiStrict(parts[1])
		if !ok {
			return 0, 0, 0, false
		}
		year, ok = atoiStrict(parts[2])
		if !ok {
			return 0, 0, 0, false
		}
	case 2:
		month, ok = atoiStrict(parts[0])
		if !ok {
			return 0, 0, 0, false
		}
		day = 1
		year, ok = atoiStrict(parts[1])
		if !ok {
			return 0, 0, 0, false
		}
	default:
		return 0, 0, 0, false
	}

	if month == 0 || day == 0 || year == 0 {
		return 0, 0, 0, false
	}
	if year < 20 {
		year += 2000
	} else if year < 100 {
		year += 1900
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 || year > 2020 {
		return 0, 0, 0, false
	}
	return month, day, year, true
}

// CleanDate reformats a raw date as "MM/DD/YYYY", or returns "" when the
// input has no usable date.
func CleanDate(raw string) string {
	month, day, year, ok := SplitDate(raw)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", month, day, year)
}

// ParseDate converts a raw date field to a time.Time.
func ParseDate(raw string) (time.Time, bool) {
	month, day, year, ok := SplitDate(raw)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// NilDate reports whether a program-record date field carries no real value.
// The SIS emits "0/0/0" and "01/01/1900" as empty-date sentinels.
func NilDate(raw string) bool {
	return raw == "" || raw == "0/0/0" || raw == "01/01/1900"
}

func atoiStrict(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

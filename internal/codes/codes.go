// Package codes holds the domain vocabulary tables: language-fluency codes,
// term abbreviations, support-program codes and the course exclusion list.
package codes

import (
	"strconv"
	"strings"

	"github.com/ksdtech/dd-importer/internal/schoolyear"
)

// fluencyCodes maps the SIS English-language-acquisition status to the
// numeric fluency code the reporting platform expects.
var fluencyCodes = map[string]string{
	"EO":   "1",
	"IFEP": "2",
	"EL":   "3",
	"RFEP": "4",
	"TBD":  "5",
}

// Fluency translates a raw ELA status to its numeric code. Unknown or empty
// statuses come back empty.
func Fluency(raw string) string {
	if raw == "" {
		return ""
	}
	return fluencyCodes[strings.ToUpper(raw)]
}

// termAbbrs maps SIS term labels to the reporting platform's two-letter
// codes. Full-year labels collapse to "YR", half terms to "H1".."H6".
var termAbbrs = buildTermAbbrs()

func buildTermAbbrs() map[string]string {
	m := make(map[string]string)
	for _, y := range schoolyear.ValidYears {
		m[y] = "YR"
	}
	for i := 1; i <= 6; i++ {
		h := strconv.Itoa(i)
		m["HT "+h] = "H" + h
		m["HT"+h] = "H" + h
	}
	return m
}

// TermAbbreviation normalizes a term label. Labels outside the table pass
// through unchanged; an empty result means the row carried no usable term.
func TermAbbreviation(raw string) string {
	if abbr, ok := termAbbrs[raw]; ok {
		return abbr
	}
	return raw
}

// Support-program codes found in program detail records.
const (
	ProgramTitle1    = 122
	ProgramGATE      = 127
	ProgramMigrant   = 135
	ProgramSpecialEd = 144
	ProgramNSLP      = 175
)

// ExcludedCourses are never aggregated into rosters: the attendance
// pseudo-courses and the Bacich math placeholders.
var ExcludedCourses = map[string]bool{
	"AAAA": true,
	"oooo": true,
	"3100": true,
	"4100": true,
}

// nonExcludedCourses documents the Bacich enrichment sections (library, art,
// tech, music, chorus, PE) that are known-good for roster aggregation. No
// pass consults it; it is kept as a reference list only.
var nonExcludedCourses = []string{
	"0500", "1500", "2500", "3500", "4500",
	"0820", "1820", "2820", "3820", "4820",
	"0830", "1830", "2830", "3830", "4830",
	"0880", "1880", "2880", "3880", "4880",
	"0881", "1881", "2881", "3881", "4881",
	"0700", "1700", "2700", "3700", "4700",
}

// CourseAbbreviation derives a short course code from the course name: the
// first word, letters only, upper-cased and cut to four characters. When the
// last word looks like a grade-level token (K, TK or 1-8) it is appended, so
// "Algebra 1" becomes "ALGE1".
func CourseAbbreviation(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	first := strings.ToUpper(words[0])
	var b strings.Builder
	for i := 0; i < len(first) && b.Len() < 4; i++ {
		if first[i] >= 'A' && first[i] <= 'Z' {
			b.WriteByte(first[i])
		}
	}
	abbr := b.String()
	if len(words) > 1 {
		last := strings.ToUpper(words[len(words)-1])
		if gradeToken(last) {
			abbr += last
		}
	}
	return abbr
}

func gradeToken(w string) bool {
	if w == "" {
		return false
	}
	if w[0] == 'K' || strings.HasPrefix(w, "TK") {
		return true
	}
	return w[0] >= '1' && w[0] <= '8'
}

// ExpressionPeriod extracts the class period from a schedule expression such
// as "2(A-E)": the leading digit run. Period 0 is invalid and anything above
// 9 clamps to 9, since the platform only accepts nine periods. Returns ""
// when no period can be derived.
func ExpressionPeriod(expr string) string {
	end := 0
	for end < len(expr) && expr[end] >= '0' && expr[end] <= '9' {
		end++
	}
	if end == 0 {
		return ""
	}
	period, err := strconv.Atoi(expr[:end])
	if err != nil {
		// digit run too long for an int; certainly above 9
		return "9"
	}
	if period == 0 {
		return ""
	}
	if period > 9 {
		period = 9
	}
	return strconv.Itoa(period)
}

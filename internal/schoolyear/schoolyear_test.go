package schoolyear

import (
	"testing"
	"time"
)

func TestCleanDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full date", "3/4/2005", "03/04/2005"},
		{"two digit year below pivot", "3/4/5", "03/04/2005"},
		{"two digit year above pivot", "3/4/99", "03/04/1999"},
		{"pivot boundary low", "1/1/19", "01/01/2019"},
		{"pivot boundary high", "1/1/20", "01/01/1920"},
		{"month year only", "3/2005", "03/01/2005"},
		{"dashes", "3-4-2005", "03/04/2005"},
		{"time suffix ignored", "3/4/2005 00:00", "03/04/2005"},
		{"leading whitespace", "  3/4/2005", "03/04/2005"},
		{"empty", "", ""},
		{"zero sentinel", "0/0/0", ""},
		{"month out of range", "13/4/2005", ""},
		{"day out of range", "12/32/2005", ""},
		{"year below range", "1/1/1899", ""},
		{"year above range", "1/1/2021", ""},
		{"garbage", "yesterday", ""},
		{"trailing garbage", "1/2/3x", ""},
		{"too many parts", "1/2/3/4", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanDate(tt.input); got != tt.want {
				t.Errorf("CleanDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNilDate(t *testing.T) {
	for _, raw := range []string{"", "0/0/0", "01/01/1900"} {
		if !NilDate(raw) {
			t.Errorf("NilDate(%q) = false, want true", raw)
		}
	}
	if NilDate("08/20/2016") {
		t.Error("NilDate rejected a real date")
	}
}

func TestDateToYear(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"07/15/2010", "10-11"},
		{"06/30/2010", "09-10"},
		{"8/20/16", "16-17"},
		{"1/5/2002", "01-02"},
	}
	for _, tt := range tests {
		got, err := DateToYear(tt.input)
		if err != nil {
			t.Fatalf("DateToYear(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("DateToYear(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := DateToYear("not a date"); err == nil {
		t.Error("DateToYear accepted an unparseable date")
	}
}

func TestTermToYear(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2000", "10-11"},
		{"2003", "10-11"},
		{"2600", "16-17"},
		{"1100", "01-02"},
	}
	for _, tt := range tests {
		got, err := TermToYear(tt.input)
		if err != nil {
			t.Fatalf("TermToYear(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("TermToYear(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := TermToYear("abc"); err == nil {
		t.Error("TermToYear accepted a non-numeric term id")
	}
}

// A date in an academic year and a term id for the same year must resolve to
// the same label.
func TestDateAndTermAgree(t *testing.T) {
	pairs := []struct {
		date   string
		termID string
		want   string
	}{
		{"07/15/2010", "2000", "10-11"},
		{"02/01/2011", "2000", "10-11"},
		{"09/01/2016", "2600", "16-17"},
	}
	for _, p := range pairs {
		fromDate, err := DateToYear(p.date)
		if err != nil {
			t.Fatal(err)
		}
		fromTerm, err := TermToYear(p.termID)
		if err != nil {
			t.Fatal(err)
		}
		if fromDate != p.want || fromTerm != p.want {
			t.Errorf("date %q -> %q, term %q -> %q, want both %q",
				p.date, fromDate, p.termID, fromTerm, p.want)
		}
	}
}

func TestYearToTerm(t *testing.T) {
	if got := YearToTerm("10-11"); got != "2000" {
		t.Errorf("YearToTerm(10-11) = %q, want 2000", got)
	}
	if got := YearToTerm("16-17"); got != "2600" {
		t.Errorf("YearToTerm(16-17) = %q, want 2600", got)
	}
}

func TestAutoYear(t *testing.T) {
	tests := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2016, 8, 14, 0, 0, 0, 0, time.UTC), "15-16"},
		{time.Date(2016, 8, 15, 0, 0, 0, 0, time.UTC), "16-17"},
		{time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC), "16-17"},
		{time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC), "16-17"},
	}
	for _, tt := range tests {
		if got := AutoYear(tt.day); got != tt.want {
			t.Errorf("AutoYear(%s) = %q, want %q", tt.day.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("16-17") {
		t.Error("16-17 should be valid")
	}
	if IsValid("99-00") {
		t.Error("99-00 should not be valid")
	}
}

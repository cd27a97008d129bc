package codes

import (
	"errors"
	"testing"
)

func TestFluency(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"EO", "1"},
		{"ifep", "2"},
		{"El", "3"},
		{"RFEP", "4"},
		{"TBD", "5"},
		{"", ""},
		{"XX", ""},
	}
	for _, tt := range tests {
		if got := Fluency(tt.input); got != tt.want {
			t.Errorf("Fluency(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTermAbbreviation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"HT 1", "H1"},
		{"HT1", "H1"},
		{"HT 6", "H6"},
		{"10-11", "YR"},
		{"16-17", "YR"},
		{"Q3", "Q3"}, // unmatched labels pass through
		{"", ""},
	}
	for _, tt := range tests {
		if got := TermAbbreviation(tt.input); got != tt.want {
			t.Errorf("TermAbbreviation(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCourseAbbreviation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"grade digit suffix", "Algebra 1", "ALGE1"},
		{"no grade suffix", "Physical Education", "PHYS"},
		{"kinder suffix", "Reading K", "READK"},
		{"tk suffix", "Homeroom TK", "HOMETK"},
		{"short first word", "PE 7", "PE7"},
		{"digits stripped from stem", "4th Grade Math", "TH"},
		{"single word", "Science", "SCIE"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseAbbreviation(tt.input); got != tt.want {
				t.Errorf("CourseAbbreviation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpressionPeriod(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2(A-E)", "2"},
		{"10(A)", "9"}, // platform caps at nine periods
		{"9", "9"},
		{"0(A)", ""},
		{"", ""},
		{"(A)", ""},
	}
	for _, tt := range tests {
		if got := ExpressionPeriod(tt.input); got != tt.want {
			t.Errorf("ExpressionPeriod(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrimaryDisability(t *testing.T) {
	primaryOnly := "\x11\x04\x03\x12\x00\x03320"
	withSecondary := "\x11\x04\x06\x12\x00\x03280\x11\x04\x03\x12\x00\x03320"

	got, err := PrimaryDisability(primaryOnly)
	if err != nil || got != "320" {
		t.Errorf("PrimaryDisability(primary only) = %q, %v; want 320, nil", got, err)
	}

	got, err = PrimaryDisability(withSecondary)
	if err != nil || got != "320" {
		t.Errorf("PrimaryDisability(with secondary) = %q, %v; want 320, nil", got, err)
	}
}

func TestPrimaryDisabilityFatal(t *testing.T) {
	bad := []string{
		"",
		"320",
		"\x11\x04\x06\x12\x00\x03280", // secondary marker only
		"\x11\x04\x03\x12\x00\x0332",  // truncated digit group
		"\x11\x04\x03\x12\x00\x03ab3", // non-digits after marker
	}
	for _, custom := range bad {
		if _, err := PrimaryDisability(custom); !errors.Is(err, ErrDisabilityPattern) {
			t.Errorf("PrimaryDisability(%q) err = %v, want ErrDisabilityPattern", custom, err)
		}
	}
}

func TestExcludedCourses(t *testing.T) {
	for _, id := range []string{"AAAA", "oooo", "3100", "4100"} {
		if !ExcludedCourses[id] {
			t.Errorf("course %s should be excluded", id)
		}
	}
	if ExcludedCourses["0500"] {
		t.Error("course 0500 should not be excluded")
	}
}

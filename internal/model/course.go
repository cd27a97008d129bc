package model

// Course is a course catalog entry, keyed by course number.
type Course struct {
	CourseID     string
	Abbreviation string
	Name         string
	Credits      string
	SubjectCode  string
	// AToG is reserved for UC a-g eligibility; the SIS export does not
	// carry it, so it is always empty.
	AToG       string
	SchoolID   string
	SchoolCode string
}

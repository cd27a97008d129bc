package model

// RosterMembership is one student's assignment to a course section in one
// academic year. It is a snapshot of the joined student, teacher and
// enrollment fields at roster-ingestion time; later changes to those
// records do not propagate into it.
type RosterMembership struct {
	SSID          string
	StudentNumber string
	TeacherID     string
	EmployeeID    string
	SchoolID      string
	SchoolCode    string
	GradeLevel    string
	Period        string
	Term          string
	CourseID      string
	SectionID     string
}

package model

// User is a teacher or staff record, keyed by the SIS internal user id.
// Built once per run; not year-scoped.
type User struct {
	EmployeeID   string
	TeacherID    string
	SchoolID     string
	SchoolCode   string
	FirstName    string
	LastName     string
	EmailAddress string
}

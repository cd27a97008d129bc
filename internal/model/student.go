package model

// Student is the demographic record for one student, keyed by the SIS
// internal student id. Fields are filled in incrementally across ingestion
// passes; anything never set stays an empty string.
type Student struct {
	SSID          string
	StudentNumber string
	FirstName     string
	LastName      string
	Gender        string
	Parent        string
	Street        string
	City          string
	State         string
	Zip           string
	PhoneNumber   string

	ParentEducation string

	Birthdate           string
	DateEnteredSchool   string
	DateEnteredDistrict string
	FirstUSEntryDate    string
	DateRFEP            string

	Ethnicity       string
	PrimaryLanguage string
	// LanguageFluency is the numeric fluency code ("1".."5") or empty.
	LanguageFluency string

	Gate              string
	NSLP              string
	MigrantEd         string
	SpecialProgram    string
	Title1            string
	PrimaryDisability string

	// SchoolID and SchoolCode are overwritten from the year's enrollment
	// record just before the demographic row is written.
	SchoolID   string
	SchoolCode string
}

// Enrollment records that a student attended a school in one academic year.
type Enrollment struct {
	SchoolID   string
	SchoolCode string
	GradeLevel string
}

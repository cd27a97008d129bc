package importer

import "github.com/ksdtech/dd-importer/internal/tabfile"

// Source file names inside the source directory. Courses and rosters come in
// an "all schools" variant plus per-site exports; the all variant wins when
// present and otherwise the first per-site file found is used.
const (
	studentsFile = "dd-students.txt"
	teachersFile = "dd-teachers.txt"
	racesFile    = "dd-races.txt"
	programsFile = "dd-programs.txt"
)

var (
	courseFiles = []string{"dd-courses-all.txt", "dd-courses-bacich.txt", "dd-courses-kent.txt"}
	rosterFiles = []string{"dd-rosters-all.txt", "dd-rosters-bacich.txt", "dd-rosters-kent.txt"}
)

// Fallback header lists for export variants that omit the header row. These
// mirror the PowerSchool export templates and have to be kept in sync with
// them by hand.
var (
	studentsCategory = tabfile.Category{
		Signature: "ID",
		Fallback: []string{
			"id",
			"student_number",
			"state_studentnumber",
			"schoolid",
			"first_name",
			"last_name",
			"dob",
			"fedethnicity",
			"gender",
			"enroll_status",
			"grade_level",
			"mother_first",
			"mother",
			"father_first",
			"father",
			"street",
			"city",
			"state",
			"zip",
			"home_phone",
			"schoolentrydate",
			"districtentrydate",
			"entrydate",
			"exitdate",
			"[39]alternate_school_number",
			"ca_parented",
			"ca_primarylanguage",
			"ca_elastatus",
			"ca_daterfep",
			"ca_firstusaschooling",
			"ca_gate",
			"ca_migranted",
			"ca_primdisability",
			"ca_titlei_targeted",
			"ethnicity",
		},
	}

	teachersCategory = tabfile.Category{
		Signature: "ID",
		Fallback: []string{
			"id",
			"teachernumber",
			"schoolid",
			"[39]alternate_school_number",
			"first_name",
			"last_name",
			"email_addr",
			"status",
			"staffstatus",
		},
	}

	coursesCategory = tabfile.Category{
		Signature: "COURSE_NUMBER",
		Fallback: []string{
			"course_number",
			"course_name",
			"credit_hours",
			"credittype",
			"ca_courselevel",
			"schoolid",
			"[39]alternate_school_number",
		},
	}

	rostersCategory = tabfile.Category{
		Signature: "STUDENTID",
		Fallback: []string{
			"studentid",
			"teacherid",
			"schoolid",
			"termid",
			"[01]state_studentnumber",
			"[05]teachernumber",
			"[39]alternate_school_number",
			"[01]grade_level",
			"expression",
			"abbreviation",
			"course_number",
			"section_number",
			"sectionid",
		},
	}

	// Detail exports always carry their own header row.
	racesCategory    = tabfile.Category{Signature: "STUDENTID"}
	programsCategory = tabfile.Category{Signature: "FOREIGNKEY"}
)

package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ksdtech/dd-importer/internal/codes"
	"github.com/ksdtech/dd-importer/internal/schoolyear"
	"github.com/ksdtech/dd-importer/internal/tabfile"
)

// firstVariant returns the first source file that exists out of the
// preference-ordered variants, or "" when the whole category is absent.
func (im *Importer) firstVariant(names []string) string {
	for _, name := range names {
		path := filepath.Join(im.cfg.SourceDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (im *Importer) ingestCourses() error {
	path := im.firstVariant(courseFiles)
	if path == "" {
		im.log.Warn().Msg("no course file found; skipping")
		return nil
	}

	num := 0
	err := tabfile.ReadRows(path, coursesCategory, func(row map[string]string) error {
		courseID := row["course_number"]
		c := im.pl.EnsureCourse(courseID)
		c.CourseID = courseID
		c.Abbreviation = codes.CourseAbbreviation(row["course_name"])
		c.Name = row["course_name"]
		c.Credits = row["credit_hours"]
		c.SubjectCode = row["credittype"]
		c.AToG = ""
		c.SchoolID = row["schoolid"]
		c.SchoolCode = row["alternate_school_number"]

		num++
		if num%100 == 0 {
			im.log.Info().Int("count", num).Msg("courses analyzed")
		}
		return nil
	})
	return err
}

func (im *Importer) ingestTeachers(year string) error {
	path := filepath.Join(im.cfg.SourceDir, teachersFile)
	num := 0
	return tabfile.ReadRows(path, teachersCategory, func(row map[string]string) error {
		userID := row["id"]
		teacherID := row["teachernumber"]

		u := im.pl.EnsureUser(userID)
		u.EmployeeID = teacherID
		u.TeacherID = teacherID
		u.SchoolID = row["schoolid"]
		u.SchoolCode = row["alternate_school_number"]
		u.FirstName = row["first_name"]
		u.LastName = row["last_name"]
		u.EmailAddress = row["email_addr"]

		// Currently employed teachers, or administrators granted explicit
		// platform access.
		status, _ := strconv.Atoi(row["status"])
		staffStatus, _ := strconv.Atoi(row["staffstatus"])
		if status == 1 && (row["datadirector_access"] == "1" || staffStatus == 1) {
			im.pl.MarkTeacherActive(year, userID)
			im.log.Debug().
				Str("last_name", row["last_name"]).
				Str("year", year).
				Msg("teacher active")
		}

		num++
		if num%100 == 0 {
			im.log.Info().Int("count", num).Msg("teacher records analyzed")
		}
		return nil
	})
}

func (im *Importer) ingestStudents(year string) error {
	path := filepath.Join(im.cfg.SourceDir, studentsFile)
	num := 0
	return tabfile.ReadRows(path, studentsCategory, func(row map[string]string) error {
		studentID := row["id"]
		schoolID, _ := strconv.Atoi(row["schoolid"])
		if im.cfg.SingleSchool != 0 && schoolID != im.cfg.SingleSchool {
			im.log.Debug().Str("student_id", studentID).Msg("skipping student; wrong school")
			return nil
		}

		parent := strings.TrimSpace(row["mother_first"] + " " + row["mother"])
		if parent == "" {
			parent = strings.TrimSpace(row["father_first"] + " " + row["father"])
		}

		s := im.pl.EnsureStudent(studentID)
		s.SSID = row["state_studentnumber"]
		s.StudentNumber = row["student_number"]
		s.FirstName = row["first_name"]
		s.LastName = row["last_name"]
		s.Gender = row["gender"]
		s.Parent = parent
		s.Street = row["street"]
		s.City = row["city"]
		s.State = row["state"]
		s.Zip = row["zip"]
		s.PhoneNumber = row["home_phone"]
		s.ParentEducation = row["ca_parented"]
		s.Birthdate = schoolyear.CleanDate(row["dob"])
		s.DateEnteredSchool = schoolyear.CleanDate(row["schoolentrydate"])
		s.DateEnteredDistrict = schoolyear.CleanDate(row["districtentrydate"])
		s.FirstUSEntryDate = schoolyear.CleanDate(row["ca_firstusaschooling"])
		s.DateRFEP = schoolyear.CleanDate(row["ca_daterfep"])

		if im.cfg.UseRaceFile {
			// The race pass fills in the detail codes; here the primary
			// ethnicity is 500 only for hispanic/latino students.
			s.Ethnicity = ""
			if fed, _ := strconv.Atoi(row["fedethnicity"]); fed == 1 {
				s.Ethnicity = "500"
			}
		} else {
			s.Ethnicity = row["ethnicity"]
		}

		s.PrimaryLanguage = row["ca_primarylanguage"]
		s.LanguageFluency = codes.Fluency(row["ca_elastatus"])

		s.Gate = "N"
		s.NSLP = "N"
		s.MigrantEd = "N"
		s.SpecialProgram = "N"
		s.Title1 = "N"
		if !im.cfg.UseProgramFile {
			if yesPrefix(row["ca_gate"]) {
				s.Gate = "Y"
			}
			if yesPrefix(row["ca_migranted"]) {
				s.MigrantEd = "Y"
			}
			if d := row["ca_primdisability"]; d != "" && d != "000" {
				s.SpecialProgram = "Y"
				s.PrimaryDisability = d
			}
			if row["ca_titlei_targeted"] != "" {
				s.Title1 = "Y"
			}
		}

		enrollStatus, _ := strconv.Atoi(row["enroll_status"])
		enrollYear, err := schoolyear.DateToYear(row["entrydate"])
		if err != nil {
			return fmt.Errorf("student %s: %w", studentID, err)
		}
		if enrollStatus == 0 || (year == enrollYear && enrollStatus > 0) {
			e := im.pl.EnsureEnrollment(year, studentID)
			e.SchoolID = row["schoolid"]
			e.SchoolCode = row["alternate_school_number"]
			e.GradeLevel = row["grade_level"]
		}

		num++
		if num%100 == 0 {
			im.log.Info().Int("count", num).Msg("student records analyzed")
		}
		return nil
	})
}

func yesPrefix(s string) bool {
	return len(s) >= 3 && strings.EqualFold(s[:3], "Yes")
}

// ingestRaces fills in ethnicity from the race detail file. Only the first
// race record per student applies, and only when the student pass left the
// ethnicity empty.
func (im *Importer) ingestRaces() error {
	path := filepath.Join(im.cfg.SourceDir, racesFile)
	return tabfile.ReadRows(path, racesCategory, func(row map[string]string) error {
		studentID := row["studentid"]
		if !im.pl.HasStudent(studentID) {
			return nil
		}
		s := im.pl.EnsureStudent(studentID)
		if s.Ethnicity == "" {
			s.Ethnicity = row["racecd"]
		}
		return nil
	})
}

// ingestPrograms applies support-program detail records. A record counts
// only when its effective window contains today; missing or sentinel dates
// default to today and therefore always qualify.
func (im *Importer) ingestPrograms() error {
	path := filepath.Join(im.cfg.SourceDir, programsFile)
	return tabfile.ReadRows(path, programsCategory, func(row map[string]string) error {
		studentID := row["foreignkey"]
		if !im.pl.HasStudent(studentID) {
			return nil
		}

		start := im.effectiveDate(row["user_defined_date"])
		end := im.effectiveDate(row["user_defined_date2"])
		if start.After(im.today) || end.Before(im.today) {
			return nil
		}

		s := im.pl.EnsureStudent(studentID)
		code, _ := strconv.Atoi(row["user_defined_text"])
		switch code {
		case codes.ProgramTitle1:
			s.Title1 = "Y"
		case codes.ProgramGATE:
			s.Gate = "Y"
		case codes.ProgramMigrant:
			s.MigrantEd = "Y"
		case codes.ProgramSpecialEd:
			disability, err := codes.PrimaryDisability(row["custom"])
			if err != nil {
				return fmt.Errorf("student %s: %w", studentID, err)
			}
			s.SpecialProgram = "Y"
			s.PrimaryDisability = disability
		case codes.ProgramNSLP:
			s.NSLP = "Y"
		}
		return nil
	})
}

func (im *Importer) effectiveDate(raw string) time.Time {
	if schoolyear.NilDate(raw) {
		return im.today
	}
	d, ok := schoolyear.ParseDate(raw)
	if !ok {
		// An unparseable effective date sorts before everything, matching
		// the fail-soft date handling elsewhere.
		return time.Time{}
	}
	return d
}

func (im *Importer) ingestRosters() error {
	path := im.firstVariant(rosterFiles)
	if path == "" {
		im.log.Warn().Msg("no roster file found; skipping")
		return nil
	}

	num := 0
	return tabfile.ReadRows(path, rostersCategory, func(row map[string]string) error {
		courseID := row["course_number"]
		if codes.ExcludedCourses[courseID] {
			return nil
		}

		studentID := row["studentid"]
		if !im.pl.HasStudent(studentID) {
			return nil
		}

		// Negative ids mark dropped sections.
		termID := row["termid"]
		if termID == "" || termID[0] == '-' {
			return nil
		}
		sectionID := row["sectionid"]
		if sectionID == "" || sectionID[0] == '-' {
			return nil
		}

		period := codes.ExpressionPeriod(row["expression"])
		if period == "" {
			return nil
		}
		term := codes.TermAbbreviation(row["abbreviation"])
		if term == "" {
			return nil
		}

		year, err := schoolyear.TermToYear(termID)
		if err != nil {
			return err
		}

		userID := row["teacherid"]
		im.pl.MarkTeacherActive(year, userID)

		student := im.pl.StudentView(studentID)
		user := im.pl.UserView(userID)
		enrollment := im.pl.EnrollmentView(year, studentID)

		m := im.pl.EnsureRoster(year, courseID+"-"+studentID)
		m.SSID = student.SSID
		m.StudentNumber = student.StudentNumber
		m.TeacherID = user.TeacherID
		m.EmployeeID = user.EmployeeID
		m.SchoolID = row["schoolid"]
		m.SchoolCode = row["alternate_school_number"]
		m.GradeLevel = enrollment.GradeLevel
		m.Period = period
		m.Term = term
		m.CourseID = courseID
		m.SectionID = sectionID

		num++
		if num%100 == 0 {
			im.log.Info().Int("count", num).Msg("roster records analyzed")
		}
		return nil
	})
}

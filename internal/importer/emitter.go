package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ksdtech/dd-importer/internal/model"
	"github.com/ksdtech/dd-importer/internal/tabfile"
)

var rosterFields = []string{
	"ssid", "student_id", "teacher_id", "employee_id",
	"school_id", "school_code", "grade_level", "period", "term", "course_id", "section_id",
}

var userFields = []string{
	"employee_id", "teacher_id", "school_id", "school_code",
	"first_name", "last_name", "email_address",
}

var demoFields = []string{
	"ssid", "student_id", "school_code", "first_name", "last_name",
	"birthdate", "gender", "parent", "street", "city", "state", "zip", "phone_number",
	"primary_language", "ethnicity", "language_fluency",
	"date_entered_school", "date_entered_district", "first_us_entry_date",
	"gate", "primary_disability", "nslp", "parent_education", "migrant_ed",
	"date_rfep", "special_program", "title_1",
}

var courseFields = []string{
	"course_id", "abbreviation", "name",
	"credits", "subject_code", "a_to_g", "school_id", "school_code",
}

func rosterRow(m model.RosterMembership) []string {
	return []string{
		m.SSID, m.StudentNumber, m.TeacherID, m.EmployeeID,
		m.SchoolID, m.SchoolCode, m.GradeLevel, m.Period, m.Term, m.CourseID, m.SectionID,
	}
}

func userRow(u model.User) []string {
	return []string{
		u.EmployeeID, u.TeacherID, u.SchoolID, u.SchoolCode,
		u.FirstName, u.LastName, u.EmailAddress,
	}
}

func demoRow(s model.Student) []string {
	return []string{
		s.SSID, s.StudentNumber, s.SchoolCode, s.FirstName, s.LastName,
		s.Birthdate, s.Gender, s.Parent, s.Street, s.City, s.State, s.Zip, s.PhoneNumber,
		s.PrimaryLanguage, s.Ethnicity, s.LanguageFluency,
		s.DateEnteredSchool, s.DateEnteredDistrict, s.FirstUSEntryDate,
		s.Gate, s.PrimaryDisability, s.NSLP, s.ParentEducation, s.MigrantEd,
		s.DateRFEP, s.SpecialProgram, s.Title1,
	}
}

func courseRow(c model.Course) []string {
	return []string{
		c.CourseID, c.Abbreviation, c.Name,
		c.Credits, c.SubjectCode, c.AToG, c.SchoolID, c.SchoolCode,
	}
}

// OutputDir is where the emitted files land, under the output base dir.
func (im *Importer) OutputDir() string {
	return filepath.Join(im.cfg.OutputBaseDir, "datafiles")
}

// Emit clears the output directory and writes one file set per academic
// year present in the stores (or for the configured single year when the
// run produced nothing year-scoped). Returns the number of files written;
// zero means the run did no useful work.
func (im *Importer) Emit() (int, error) {
	im.log.Info().Msg("preparing output files")

	outDir := im.OutputDir()
	if err := os.RemoveAll(outDir); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}

	filesWritten := 0
	courseKeys := make(map[string]bool)

	years := im.pl.RosterYears()
	if len(years) == 0 && im.singleYear != "" {
		years = []string{im.singleYear}
	}
	for _, year := range years {
		if len(im.pl.Rosters[year]) != 0 {
			if err := im.emitRosters(outDir, year, courseKeys); err != nil {
				return filesWritten, err
			}
			filesWritten++
		}
		if err := im.emitUsers(outDir, year); err != nil {
			return filesWritten, err
		}
		filesWritten++
		if err := im.emitDemographics(outDir, year); err != nil {
			return filesWritten, err
		}
		filesWritten++
	}

	if len(courseKeys) != 0 {
		if err := im.emitCourses(outDir, courseKeys); err != nil {
			return filesWritten, err
		}
		filesWritten++
	}

	return filesWritten, nil
}

// outputName year-prefixes the file in multi-year mode and suffixes it with
// the site label in single-year mode.
func (im *Importer) outputName(entity, year string) string {
	if im.singleYear != "" {
		return fmt.Sprintf("%s_%s.txt", entity, im.cfg.SiteLabel)
	}
	return year + entity + ".txt"
}

func (im *Importer) emitRosters(outDir, year string, courseKeys map[string]bool) error {
	path := filepath.Join(outDir, im.outputName("rosters", year))
	out, err := tabfile.Create(path, rosterFields)
	if err != nil {
		return err
	}
	defer out.Close()

	num := 0
	for _, memberID := range im.pl.RosterMembers(year) {
		m := im.pl.Rosters[year][memberID]
		courseKeys[m.CourseID] = true
		if err := out.WriteRow(rosterRow(*m)); err != nil {
			return err
		}
		num++
		if num%100 == 0 {
			im.log.Info().Int("count", num).Str("year", year).Msg("roster records written")
		}
	}
	return out.Close()
}

func (im *Importer) emitUsers(outDir, year string) error {
	path := filepath.Join(outDir, im.outputName("users", year))
	out, err := tabfile.Create(path, userFields)
	if err != nil {
		return err
	}
	defer out.Close()

	num := 0
	for _, userID := range im.pl.ActiveTeachers(year) {
		u := im.pl.UserView(userID)
		if schoolCodeZero(u.SchoolCode) {
			continue
		}
		if err := out.WriteRow(userRow(u)); err != nil {
			return err
		}
		num++
		if num%100 == 0 {
			im.log.Info().Int("count", num).Str("year", year).Msg("teacher records written")
		}
	}
	return out.Close()
}

func schoolCodeZero(code string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	return err != nil || n == 0
}

func (im *Importer) emitDemographics(outDir, year string) error {
	path := filepath.Join(outDir, im.outputName("demo", year))
	out, err := tabfile.Create(path, demoFields)
	if err != nil {
		return err
	}
	defer out.Close()

	num := 0
	for _, studentID := range im.pl.EnrolledStudents(year) {
		s := im.pl.EnsureStudent(studentID)
		if s.SSID == "" {
			continue
		}
		// The student's school placement follows this year's enrollment.
		e := im.pl.EnrollmentView(year, studentID)
		s.SchoolID = e.SchoolID
		s.SchoolCode = e.SchoolCode
		if err := out.WriteRow(demoRow(*s)); err != nil {
			return err
		}
		num++
		if num%100 == 0 {
			im.log.Info().Int("count", num).Str("year", year).Msg("demographic records written")
		}
	}
	return out.Close()
}

// emitCourses writes the one course catalog file, restricted to courses that
// an emitted roster row actually references.
func (im *Importer) emitCourses(outDir string, courseKeys map[string]bool) error {
	path := filepath.Join(outDir, "courses_"+im.cfg.SiteLabel+".txt")
	out, err := tabfile.Create(path, courseFields)
	if err != nil {
		return err
	}
	defer out.Close()

	ids := make([]string, 0, len(courseKeys))
	for id := range courseKeys {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	num := 0
	for _, id := range ids {
		if err := out.WriteRow(courseRow(im.pl.CourseView(id))); err != nil {
			return err
		}
		num++
		if num%100 == 0 {
			im.log.Info().Int("count", num).Msg("course records written")
		}
	}
	return out.Close()
}

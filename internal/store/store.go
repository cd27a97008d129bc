// Package store owns the in-memory entity stores the ingestion passes write
// into. One Pipeline per run; single writer, no locking.
package store

import (
	"sort"

	"github.com/ksdtech/dd-importer/internal/model"
)

// Pipeline holds every keyed entity store for one import run. Per-year
// stores are keyed by academic-year label first; a year that was never
// written reads as an empty bucket.
type Pipeline struct {
	Students map[string]*model.Student
	Users    map[string]*model.User
	Courses  map[string]*model.Course

	Enrollments  map[string]map[string]*model.Enrollment
	TeacherYears map[string]map[string]bool
	Rosters      map[string]map[string]*model.RosterMembership
}

func New() *Pipeline {
	return &Pipeline{
		Students:     make(map[string]*model.Student),
		Users:        make(map[string]*model.User),
		Courses:      make(map[string]*model.Course),
		Enrollments:  make(map[string]map[string]*model.Enrollment),
		TeacherYears: make(map[string]map[string]bool),
		Rosters:      make(map[string]map[string]*model.RosterMembership),
	}
}

// EnsureStudent returns the student record for id, creating it if needed.
func (p *Pipeline) EnsureStudent(id string) *model.Student {
	s, ok := p.Students[id]
	if !ok {
		s = &model.Student{}
		p.Students[id] = s
	}
	return s
}

// HasStudent reports whether a student has been ingested. Roster rows for
// unknown students are dropped, which is why pass order matters.
func (p *Pipeline) HasStudent(id string) bool {
	_, ok := p.Students[id]
	return ok
}

// StudentView returns a copy of the student record, or a zero record for an
// unknown id.
func (p *Pipeline) StudentView(id string) model.Student {
	if s, ok := p.Students[id]; ok {
		return *s
	}
	return model.Student{}
}

// EnsureUser returns the user record for id, creating it if needed.
func (p *Pipeline) EnsureUser(id string) *model.User {
	u, ok := p.Users[id]
	if !ok {
		u = &model.User{}
		p.Users[id] = u
	}
	return u
}

// UserView returns a copy of the user record, or a zero record for an
// unknown id.
func (p *Pipeline) UserView(id string) model.User {
	if u, ok := p.Users[id]; ok {
		return *u
	}
	return model.User{}
}

// EnsureCourse returns the course record for id, creating it if needed.
func (p *Pipeline) EnsureCourse(id string) *model.Course {
	c, ok := p.Courses[id]
	if !ok {
		c = &model.Course{}
		p.Courses[id] = c
	}
	return c
}

// CourseView returns a copy of the course record, or a zero record for an
// unknown id.
func (p *Pipeline) CourseView(id string) model.Course {
	if c, ok := p.Courses[id]; ok {
		return *c
	}
	return model.Course{}
}

// EnsureEnrollment returns the enrollment record for (year, studentID),
// creating bucket and record as needed.
func (p *Pipeline) EnsureEnrollment(year, studentID string) *model.Enrollment {
	bucket, ok := p.Enrollments[year]
	if !ok {
		bucket = make(map[string]*model.Enrollment)
		p.Enrollments[year] = bucket
	}
	e, ok := bucket[studentID]
	if !ok {
		e = &model.Enrollment{}
		bucket[studentID] = e
	}
	return e
}

// EnrollmentView returns a copy of the enrollment record, or a zero record
// when the year or student is absent.
func (p *Pipeline) EnrollmentView(year, studentID string) model.Enrollment {
	if e, ok := p.Enrollments[year][studentID]; ok {
		return *e
	}
	return model.Enrollment{}
}

// EnrolledStudents returns the sorted student ids enrolled in year.
func (p *Pipeline) EnrolledStudents(year string) []string {
	return sortedKeys(p.Enrollments[year])
}

// MarkTeacherActive flags a teacher as active in the given year.
func (p *Pipeline) MarkTeacherActive(year, userID string) {
	bucket, ok := p.TeacherYears[year]
	if !ok {
		bucket = make(map[string]bool)
		p.TeacherYears[year] = bucket
	}
	bucket[userID] = true
}

// ActiveTeachers returns the sorted user ids active in year.
func (p *Pipeline) ActiveTeachers(year string) []string {
	return sortedKeys(p.TeacherYears[year])
}

// EnsureRoster returns the roster membership for (year, memberID), creating
// bucket and record as needed.
func (p *Pipeline) EnsureRoster(year, memberID string) *model.RosterMembership {
	bucket, ok := p.Rosters[year]
	if !ok {
		bucket = make(map[string]*model.RosterMembership)
		p.Rosters[year] = bucket
	}
	m, ok := bucket[memberID]
	if !ok {
		m = &model.RosterMembership{}
		bucket[memberID] = m
	}
	return m
}

// RosterYears returns the sorted academic years that have roster rows.
func (p *Pipeline) RosterYears() []string {
	return sortedKeys(p.Rosters)
}

// RosterMembers returns the sorted membership keys for year.
func (p *Pipeline) RosterMembers(year string) []string {
	return sortedKeys(p.Rosters[year])
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

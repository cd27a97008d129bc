package store

import "testing"

func TestZeroValueReads(t *testing.T) {
	p := New()

	if p.HasStudent("s1") {
		t.Error("empty pipeline should not know s1")
	}
	if got := p.StudentView("s1").SSID; got != "" {
		t.Errorf("unknown student SSID = %q, want empty", got)
	}
	if got := p.UserView("u1").TeacherID; got != "" {
		t.Errorf("unknown user TeacherID = %q, want empty", got)
	}
	if got := p.EnrollmentView("16-17", "s1").GradeLevel; got != "" {
		t.Errorf("unknown enrollment GradeLevel = %q, want empty", got)
	}
}

func TestAbsentYearBucketsReadEmpty(t *testing.T) {
	p := New()
	if got := p.ActiveTeachers("16-17"); len(got) != 0 {
		t.Errorf("absent teacher-year bucket = %v, want empty", got)
	}
	if got := p.EnrolledStudents("16-17"); len(got) != 0 {
		t.Errorf("absent enrollment bucket = %v, want empty", got)
	}
	if got := p.RosterMembers("16-17"); len(got) != 0 {
		t.Errorf("absent roster bucket = %v, want empty", got)
	}
}

func TestUpsertOverwrites(t *testing.T) {
	p := New()
	p.EnsureStudent("s1").SSID = "111"
	p.EnsureStudent("s1").SSID = "222"
	if got := p.StudentView("s1").SSID; got != "222" {
		t.Errorf("SSID = %q, want last write 222", got)
	}
	if !p.HasStudent("s1") {
		t.Error("student s1 should exist after upsert")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	p := New()
	p.EnsureStudent("s1").SSID = "111"
	view := p.StudentView("s1")
	p.EnsureStudent("s1").SSID = "999"
	if view.SSID != "111" {
		t.Errorf("view mutated after source change: %q", view.SSID)
	}
}

func TestSortedYearAndMemberKeys(t *testing.T) {
	p := New()
	p.EnsureRoster("16-17", "2000-s2")
	p.EnsureRoster("15-16", "1000-s1")
	p.EnsureRoster("16-17", "1000-s1")

	years := p.RosterYears()
	if len(years) != 2 || years[0] != "15-16" || years[1] != "16-17" {
		t.Errorf("RosterYears = %v", years)
	}
	members := p.RosterMembers("16-17")
	if len(members) != 2 || members[0] != "1000-s1" || members[1] != "2000-s2" {
		t.Errorf("RosterMembers = %v", members)
	}
}

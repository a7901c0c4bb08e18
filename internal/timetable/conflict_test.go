package timetable

import "testing"

func section(subject, nbr, sec, component, title string, meetings ...string) Section {
	return Section{
		Subject:    subject,
		CatalogNbr: nbr,
		Section:    sec,
		Component:  component,
		Title:      title,
		Meetings:   meetings,
	}
}

func TestScanConflictsSingleOverlap(t *testing.T) {
	courses := []Section{
		section("CS", "2110", "LEC001", "LEC", "Object-Oriented Programming", "MW 10:10AM-11:25AM"),
		section("MATH", "1920", "LEC002", "LEC", "Multivariable Calculus", "MW 11:15AM-12:05PM"),
	}

	conflicts := ScanConflicts(courses)
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}
	c := conflicts[0]
	if c.CourseA != "CS 2110" || c.CourseB != "MATH 1920" {
		t.Errorf("labels = %q vs %q", c.CourseA, c.CourseB)
	}
	if c.MeetingA != "MW 10:10AM-11:25AM" || c.MeetingB != "MW 11:15AM-12:05PM" {
		t.Errorf("meetings = %q vs %q, want the raw wire strings", c.MeetingA, c.MeetingB)
	}
	if c.Reason == "" {
		t.Error("reason is empty")
	}
}

func TestScanConflictsNoOverlap(t *testing.T) {
	courses := []Section{
		section("CS", "2110", "LEC001", "LEC", "OOP", "MW 10:10AM-11:25AM"),
		section("PHYS", "1112", "LEC001", "LEC", "Mechanics", "TR 02:55PM-04:10PM"),
	}
	if got := ScanConflicts(courses); len(got) != 0 {
		t.Fatalf("got %d conflicts, want 0", len(got))
	}
}

func TestScanConflictsMultipleMeetingPairs(t *testing.T) {
	// Two courses whose lecture and discussion slots both collide produce
	// one conflict record per overlapping pair.
	courses := []Section{
		section("CHEM", "2090", "LEC001", "LEC", "General Chemistry",
			"MWF 09:05AM-09:55AM", "T 07:30PM-09:30PM"),
		section("BIO", "1350", "LEC001", "LEC", "Cell Biology",
			"MW 09:30AM-10:20AM", "T 07:00PM-08:00PM"),
	}
	conflicts := ScanConflicts(courses)
	if len(conflicts) != 2 {
		t.Fatalf("got %d conflicts, want 2", len(conflicts))
	}
}

func TestScanConflictsSymmetry(t *testing.T) {
	a := section("CS", "2110", "LEC001", "LEC", "OOP", "MW 10:10AM-11:25AM")
	b := section("MATH", "1920", "LEC002", "LEC", "Calc", "MW 11:15AM-12:05PM")

	ab := ScanConflicts([]Section{a, b})
	ba := ScanConflicts([]Section{b, a})

	if len(ab) != len(ba) {
		t.Fatalf("asymmetric counts: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i].CourseA != ba[i].CourseB || ab[i].CourseB != ba[i].CourseA {
			t.Errorf("conflict %d labels not mirrored: (%s,%s) vs (%s,%s)",
				i, ab[i].CourseA, ab[i].CourseB, ba[i].CourseA, ba[i].CourseB)
		}
		if ab[i].MeetingA != ba[i].MeetingB || ab[i].MeetingB != ba[i].MeetingA {
			t.Errorf("conflict %d meetings not mirrored", i)
		}
	}
}

func TestScanConflictsSameCourseSections(t *testing.T) {
	// Two sections of the same course are compared like any other pair: a
	// student who mistakenly added both lecture sections should see the
	// clash reported.
	courses := []Section{
		section("CS", "2110", "LEC001", "LEC", "OOP", "MW 10:10AM-11:25AM"),
		section("CS", "2110", "LEC002", "LEC", "OOP", "MW 10:10AM-11:25AM"),
	}
	if got := ScanConflicts(courses); len(got) != 1 {
		t.Fatalf("got %d conflicts, want 1 for clashing sibling sections", len(got))
	}
}

func TestScanConflictsRepeatedIdenticalRecords(t *testing.T) {
	c := section("CS", "2110", "LEC001", "LEC", "OOP", "MW 10:10AM-11:25AM")
	conflicts := ScanConflicts([]Section{c, c})
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}
}

func TestScanConflictsFewerThanTwoCourses(t *testing.T) {
	if got := ScanConflicts(nil); len(got) != 0 {
		t.Errorf("nil input: got %d conflicts", len(got))
	}
	one := []Section{section("CS", "2110", "LEC001", "LEC", "OOP", "MW 10:10AM-11:25AM")}
	if got := ScanConflicts(one); len(got) != 0 {
		t.Errorf("single course: got %d conflicts", len(got))
	}
}

func TestScanConflictsIgnoresMalformedMeetings(t *testing.T) {
	courses := []Section{
		section("CS", "2110", "LEC001", "LEC", "OOP", "TBA"),
		section("MATH", "1920", "LEC002", "LEC", "Calc", "MW 11:15AM-12:05PM"),
	}
	if got := ScanConflicts(courses); len(got) != 0 {
		t.Fatalf("malformed meeting produced %d conflicts, want 0", len(got))
	}
}

package timetable

import "testing"

func TestParseMeeting(t *testing.T) {
	m, ok := ParseMeeting("MW 10:10AM-11:25AM")
	if !ok {
		t.Fatal("ParseMeeting returned ok=false for valid input")
	}
	if m.Days != "MW" {
		t.Errorf("days = %q, want MW", m.Days)
	}
	if m.Time.Start != 610 || m.Time.End != 685 {
		t.Errorf("time = %d-%d, want 610-685", m.Time.Start, m.Time.End)
	}
	if m.Raw != "MW 10:10AM-11:25AM" {
		t.Errorf("raw = %q, wire format not preserved", m.Raw)
	}
}

func TestParseMeetingMalformed(t *testing.T) {
	for _, in := range []string{"", "TBA", "MW"} {
		if _, ok := ParseMeeting(in); ok {
			t.Errorf("ParseMeeting(%q) ok = true, want false", in)
		}
	}
}

func TestDaySetIntersects(t *testing.T) {
	cases := []struct {
		a, b DaySet
		want bool
	}{
		{"MW", "TR", false},
		{"MW", "MF", true},
		{"MTWRF", "F", true},
		{"", "MW", false},
		{"R", "TR", true},
	}
	for _, tc := range cases {
		if got := tc.a.Intersects(tc.b); got != tc.want {
			t.Errorf("DaySet(%q).Intersects(%q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMeetingsConflict(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{"disjoint days", "MW 10:10AM-11:25AM", "TR 02:55PM-04:10PM", false},
		{"shared day overlapping times", "MW 10:10AM-11:25AM", "MF 11:00AM-12:15PM", true},
		{"back to back", "MW 09:00AM-10:00AM", "MW 10:00AM-11:00AM", false},
		{"identical", "MW 10:10AM-11:25AM", "MW 10:10AM-11:25AM", true},
		{"contained", "M 09:00AM-05:00PM", "M 10:00AM-11:00AM", true},
		{"afternoon crossing noon", "F 11:30AM-12:20PM", "F 12:00PM-01:00PM", true},
		{"malformed left", "TBA", "MW 10:10AM-11:25AM", false},
		{"malformed right", "MW 10:10AM-11:25AM", "", false},
	}
	for _, tc := range cases {
		if got := MeetingsConflict(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: MeetingsConflict(%q, %q) = %v, want %v", tc.name, tc.a, tc.b, got, tc.want)
		}
	}
}

package calendar

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/selim/coursepilot/internal/timetable"
)

func testCourses() []timetable.Section {
	return []timetable.Section{
		{Subject: "CS", CatalogNbr: "2110", Section: "LEC001", Component: "LEC",
			Title: "Object-Oriented Programming", Meetings: []string{"MW 10:10AM-11:25AM"}},
		{Subject: "CS", CatalogNbr: "2110", Section: "DIS201", Component: "DIS",
			Title: "Object-Oriented Programming", Meetings: []string{"F 02:30PM-03:20PM"}},
		{Subject: "MATH", CatalogNbr: "1920", Section: "LEC002", Component: "LEC",
			Title: "Multivariable Calculus", Meetings: []string{"TR 08:40AM-09:55AM"}},
	}
}

func TestBuildLayoutSharedCourseColor(t *testing.T) {
	layout := BuildLayout(testCourses())

	var lectureColor, discussionColor, mathColor string
	for day := 0; day < 5; day++ {
		for _, blk := range layout.Days[day] {
			switch {
			case blk.Label == "CS 2110" && day == 4:
				discussionColor = blk.Color
			case blk.Label == "CS 2110":
				lectureColor = blk.Color
			case blk.Label == "MATH 1920":
				mathColor = blk.Color
			}
		}
	}

	if lectureColor == "" || discussionColor == "" || mathColor == "" {
		t.Fatal("expected blocks for every course")
	}
	if lectureColor != discussionColor {
		t.Errorf("lecture color %s != discussion color %s for the same course", lectureColor, discussionColor)
	}
	if lectureColor == mathColor {
		t.Errorf("distinct courses share color %s", lectureColor)
	}
}

func TestBuildLayoutFirstSevenCoursesDistinct(t *testing.T) {
	var courses []timetable.Section
	subjects := []string{"CS", "MATH", "PHYS", "CHEM", "BIO", "ECON", "HIST"}
	for _, s := range subjects {
		courses = append(courses, timetable.Section{
			Subject: s, CatalogNbr: "1000", Title: s, Meetings: []string{"M 09:00AM-10:00AM"}})
	}

	layout := BuildLayout(courses)
	seen := make(map[string]string)
	for _, blk := range layout.Days[0] {
		if prev, ok := seen[blk.Color]; ok {
			t.Errorf("courses %s and %s share color %s within the first seven", prev, blk.Label, blk.Color)
		}
		seen[blk.Color] = blk.Label
	}
	if len(seen) != 7 {
		t.Errorf("got %d distinct colors, want 7", len(seen))
	}
}

func TestBuildLayoutPaletteWraps(t *testing.T) {
	var courses []timetable.Section
	for _, s := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		courses = append(courses, timetable.Section{
			Subject: s, CatalogNbr: "1", Meetings: []string{"M 09:00AM-10:00AM"}})
	}
	layout := BuildLayout(courses)
	blocks := layout.Days[0]
	if len(blocks) != 8 {
		t.Fatalf("got %d blocks, want 8", len(blocks))
	}
	if blocks[7].Color != blocks[0].Color {
		t.Errorf("eighth course color %s should wrap to first palette color %s", blocks[7].Color, blocks[0].Color)
	}
}

func TestBuildLayoutDayBucketing(t *testing.T) {
	layout := BuildLayout(testCourses())

	wantPerDay := [5]int{1, 1, 1, 1, 1} // MW lecture, TR math, F discussion
	for day, want := range wantPerDay {
		if got := len(layout.Days[day]); got != want {
			t.Errorf("day %d: got %d blocks, want %d", day, got, want)
		}
	}

	blk := layout.Days[0][0]
	if blk.StartMin != 610 || blk.EndMin != 685 {
		t.Errorf("Monday block at %d-%d, want 610-685", blk.StartMin, blk.EndMin)
	}
}

func TestBuildLayoutSkipsMalformedMeetings(t *testing.T) {
	courses := []timetable.Section{
		{Subject: "CS", CatalogNbr: "4780", Title: "Machine Learning", Meetings: []string{"TBA", ""}},
	}
	layout := BuildLayout(courses)
	for day := 0; day < 5; day++ {
		if len(layout.Days[day]) != 0 {
			t.Fatalf("day %d has blocks from malformed meetings", day)
		}
	}
}

func TestBuildLayoutIdempotent(t *testing.T) {
	a := BuildLayout(testCourses())
	b := BuildLayout(testCourses())
	if !reflect.DeepEqual(a, b) {
		t.Error("two layouts of identical input differ")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	layout := BuildLayout(testCourses())

	first := RenderSVG(layout, cfg)
	second := RenderSVG(BuildLayout(testCourses()), cfg)
	if !bytes.Equal(first, second) {
		t.Error("identical input did not produce byte-identical SVG")
	}
}

func TestRenderSVGContents(t *testing.T) {
	cfg := DefaultConfig()
	svg := string(RenderSVG(BuildLayout(testCourses()), cfg))

	for _, want := range []string{
		"<svg", "</svg>",
		"Monday", "Friday",
		"8AM", "12PM", "7PM",
		"CS 2110", "MATH 1920",
		"10:10-11:25", // block time with AM/PM stripped
	} {
		if !bytes.Contains([]byte(svg), []byte(want)) {
			t.Errorf("rendered SVG missing %q", want)
		}
	}

	if bytes.Contains([]byte(svg), []byte(">0AM<")) {
		t.Error("rendered SVG contains 0AM hour label")
	}
}

func TestFormatHour(t *testing.T) {
	cases := map[int]string{8: "8AM", 11: "11AM", 12: "12PM", 13: "1PM", 19: "7PM", 0: "12AM"}
	for h, want := range cases {
		if got := formatHour(h); got != want {
			t.Errorf("formatHour(%d) = %q, want %q", h, got, want)
		}
	}
}

func TestBlockGeometry(t *testing.T) {
	cfg := DefaultConfig()
	svg := string(RenderSVG(BuildLayout([]timetable.Section{
		{Subject: "CS", CatalogNbr: "2110", Title: "OOP", Meetings: []string{"M 10:10AM-11:25AM"}},
	}), cfg))

	// y = header + (610/60 - 8) * 50 = 50 + 108.33 = 158.3
	if !bytes.Contains([]byte(svg), []byte(`y="158.3"`)) {
		t.Errorf("block vertical position not at expected offset:\n%s", svg)
	}
	// height = 75/60 * 50 = 62.5
	if !bytes.Contains([]byte(svg), []byte(`height="62.5"`)) {
		t.Error("block height not proportional to duration")
	}
}

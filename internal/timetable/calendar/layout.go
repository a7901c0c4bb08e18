// Package calendar projects a set of scheduled course sections onto a
// weekly grid and renders the result as an SVG document. The projection is
// a pure transform: identical input in identical order always produces
// byte-identical output.
package calendar

import (
	"github.com/selim/coursepilot/internal/timetable"
)

// Config holds the rendering geometry for the weekly grid.
type Config struct {
	Width        int `yaml:"width" env:"CALENDAR_WIDTH"`
	Height       int `yaml:"height" env:"CALENDAR_HEIGHT"`
	HeaderHeight int `yaml:"header_height" env:"CALENDAR_HEADER_HEIGHT"`
	TimeColWidth int `yaml:"time_col_width" env:"CALENDAR_TIME_COL_WIDTH"`
	HourHeight   int `yaml:"hour_height" env:"CALENDAR_HOUR_HEIGHT"`
	StartHour    int `yaml:"start_hour" env:"CALENDAR_START_HOUR"`
	EndHour      int `yaml:"end_hour" env:"CALENDAR_END_HOUR"`
}

// DefaultConfig returns the standard 900x700 canvas showing 8AM-8PM.
func DefaultConfig() Config {
	return Config{
		Width:        900,
		Height:       700,
		HeaderHeight: 50,
		TimeColWidth: 80,
		HourHeight:   50,
		StartHour:    8,
		EndHour:      20,
	}
}

// palette is the fixed cyclic block palette. Colors repeat after seven
// distinct courses.
var palette = [7]string{
	"#4E79A7", // blue
	"#F28E2B", // orange
	"#59A14F", // green
	"#E15759", // red
	"#B07AA1", // purple
	"#76B7B2", // teal
	"#EDC948", // yellow
}

// dayNames indexes the five weekday columns in MTWRF order.
var dayNames = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Block is one positioned meeting on the grid.
type Block struct {
	Label    string
	Title    string
	StartMin int
	EndMin   int
	Color    string
	Day      int // 0 = Monday
}

// Layout is the day-bucketed projection of a schedule. Blocks within a day
// keep the order in which their courses appeared in the input.
type Layout struct {
	Days [5][]Block
}

// BuildLayout assigns colors and buckets every meeting of every course into
// its weekday columns.
//
// Colors are keyed by (subject, catalog number), not by section, so a
// lecture and its discussion or lab render in the same color. This is a
// correctness property of the output, not decoration. Assignment follows
// input order, which callers must preserve to keep results deterministic.
func BuildLayout(courses []timetable.Section) Layout {
	colors := make(map[string]string)
	next := 0
	for _, c := range courses {
		key := c.CourseKey()
		if _, seen := colors[key]; !seen {
			colors[key] = palette[next%len(palette)]
			next++
		}
	}

	var layout Layout
	for _, c := range courses {
		color := colors[c.CourseKey()]
		for _, raw := range c.Meetings {
			m, ok := timetable.ParseMeeting(raw)
			if !ok {
				continue
			}
			for i := 0; i < len(m.Days); i++ {
				day := dayIndex(m.Days[i])
				if day < 0 {
					continue
				}
				layout.Days[day] = append(layout.Days[day], Block{
					Label:    c.Label(),
					Title:    c.Title,
					StartMin: m.Time.Start,
					EndMin:   m.Time.End,
					Color:    color,
					Day:      day,
				})
			}
		}
	}
	return layout
}

func dayIndex(day byte) int {
	for i := 0; i < len(timetable.DayOrder); i++ {
		if timetable.DayOrder[i] == day {
			return i
		}
	}
	return -1
}

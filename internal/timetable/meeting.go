package timetable

import (
	"strings"

	"github.com/selim/coursepilot/internal/pkg/logger"
)

// DayOrder is the canonical weekday sequence used in meeting patterns.
// R stands for Thursday.
const DayOrder = "MTWRF"

// DaySet is an ordered set of single-letter day codes drawn from MTWRF.
type DaySet string

// Contains reports whether the set includes the given day letter.
func (d DaySet) Contains(day byte) bool {
	return strings.IndexByte(string(d), day) >= 0
}

// Intersects reports whether two day sets share at least one day.
func (d DaySet) Intersects(other DaySet) bool {
	for i := 0; i < len(d); i++ {
		if other.Contains(d[i]) {
			return true
		}
	}
	return false
}

// TimeRange is a start/end pair in minutes since midnight, start before end.
type TimeRange struct {
	Start int
	End   int
}

// Overlaps is the half-open interval test: meetings that run back to back
// (one ends exactly when the other starts) do not overlap.
func (t TimeRange) Overlaps(other TimeRange) bool {
	return t.Start < other.End && other.Start < t.End
}

// Meeting is the parsed form of one weekly meeting slot. The wire format
// "<days> <start>-<end>" (e.g. "MW 10:10AM-11:25AM") is preserved verbatim
// in Raw for persistence and for conflict messages.
type Meeting struct {
	Days DaySet
	Time TimeRange
	Raw  string
}

// ParseMeeting parses a meeting string in the catalog wire format. It
// returns ok=false when the string has fewer than two space-delimited
// tokens; callers treat that as "no meeting" rather than an error.
// Time components fall back to midnight via ParseClock on dirty data.
func ParseMeeting(s string) (Meeting, bool) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		if strings.TrimSpace(s) != "" {
			logger.Warn().Str("meeting", s).Msg("Meeting string missing day/time separator, skipping")
		}
		return Meeting{}, false
	}

	times := strings.SplitN(parts[1], "-", 2)
	var tr TimeRange
	tr.Start = ParseClock(times[0])
	if len(times) == 2 {
		tr.End = ParseClock(times[1])
	}

	return Meeting{
		Days: DaySet(parts[0]),
		Time: tr,
		Raw:  s,
	}, true
}

// Overlaps reports whether two meetings collide: they must share at least
// one day and their time ranges must overlap. Day disjointness short-circuits
// without examining times.
func (m Meeting) Overlaps(other Meeting) bool {
	if !m.Days.Intersects(other.Days) {
		return false
	}
	return m.Time.Overlaps(other.Time)
}

// MeetingsConflict is the raw-string entry point used against stored catalog
// data. Malformed input on either side resolves to "no conflict": a detector
// failure must never block an otherwise valid schedule action.
func MeetingsConflict(a, b string) bool {
	ma, ok := ParseMeeting(a)
	if !ok {
		return false
	}
	mb, ok := ParseMeeting(b)
	if !ok {
		return false
	}
	return ma.Overlaps(mb)
}

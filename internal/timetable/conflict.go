package timetable

import "fmt"

// Section carries the slice of a course record the scheduling core needs:
// identity for labeling and grouping, plus the stored meeting strings.
type Section struct {
	Subject    string
	CatalogNbr string
	Section    string
	Component  string
	Title      string
	Meetings   []string
}

// Label returns the course label used in conflict reports and on the
// calendar, e.g. "CS 2110".
func (s Section) Label() string {
	return s.Subject + " " + s.CatalogNbr
}

// CourseKey groups sections of the same course: a lecture and its discussion
// or lab share a subject and catalog number but differ in section identifier.
func (s Section) CourseKey() string {
	return s.Subject + " " + s.CatalogNbr
}

// Conflict is a derived record naming two overlapping meetings of two
// scheduled courses. Conflicts are produced fresh on every scan and never
// persisted.
type Conflict struct {
	CourseA  string `json:"courseA"`
	CourseB  string `json:"courseB"`
	MeetingA string `json:"meetingA"`
	MeetingB string `json:"meetingB"`
	Reason   string `json:"reason"`
}

// ScanConflicts compares every pair of courses (i < j) and every pair of
// their meetings, yielding one Conflict per overlapping meeting pair. A
// single course pair can yield several conflicts when multiple slots
// overlap. Repeated identical sections are compared like any other pair.
//
// The scan is O(n²·m²) over n courses with m meetings each; schedules are
// tens of courses at most, so the result is always recomputed on demand.
func ScanConflicts(courses []Section) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(courses); i++ {
		for j := i + 1; j < len(courses); j++ {
			for _, ma := range courses[i].Meetings {
				for _, mb := range courses[j].Meetings {
					if !MeetingsConflict(ma, mb) {
						continue
					}
					conflicts = append(conflicts, Conflict{
						CourseA:  courses[i].Label(),
						CourseB:  courses[j].Label(),
						MeetingA: ma,
						MeetingB: mb,
						Reason: fmt.Sprintf("%s meets %s which overlaps %s meeting %s",
							courses[i].Label(), ma, courses[j].Label(), mb),
					})
				}
			}
		}
	}
	return conflicts
}

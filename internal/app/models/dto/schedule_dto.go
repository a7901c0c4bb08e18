package dto

import (
	"github.com/selim/coursepilot/internal/app/models"
	"github.com/selim/coursepilot/internal/timetable"
)

// AddCourseRequest asks to add one section, identified by its class number,
// to the caller's schedule.
type AddCourseRequest struct {
	ClassNbr int    `json:"classNbr" binding:"required"`
	Notes    string `json:"notes,omitempty"`
}

// RemoveCourseRequest removes every section of a course from the caller's
// schedule. The key deliberately omits the section identifier: removal is a
// one-to-many deletion over all enrolled sections of the course.
type RemoveCourseRequest struct {
	Subject    string `json:"subject" binding:"required"`
	CatalogNbr string `json:"catalogNbr" binding:"required"`
}

// AddCourseResult reports the outcome of an add. Conflicts are informational
// and never block the insertion; UnresolvedComponents lists sibling
// discussion/lab sections the caller still has to pick from.
type AddCourseResult struct {
	Message              string               `json:"message"`
	Course               *models.Course       `json:"course"`
	Conflicts            []timetable.Conflict `json:"conflicts,omitempty"`
	UnresolvedComponents []*models.Course     `json:"unresolvedComponents,omitempty"`
}

// RemoveCourseResult reports how many sections were deleted.
type RemoveCourseResult struct {
	Message string `json:"message"`
	Removed int64  `json:"removed"`
}

// ScheduleView is the dual-format schedule projection: a day-grouped text
// summary plus, when the image upload succeeded, a calendar URL.
type ScheduleView struct {
	Message     string                 `json:"message"`
	Items       []*models.ScheduleItem `json:"items,omitempty"`
	CalendarURL string                 `json:"calendarUrl,omitempty"`
}

// ConflictReport is the result of an explicit conflict check.
type ConflictReport struct {
	Message   string               `json:"message"`
	Conflicts []timetable.Conflict `json:"conflicts,omitempty"`
}

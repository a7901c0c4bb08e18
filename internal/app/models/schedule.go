package models

import "time"

// ScheduleEntry relates a user to one selected course section. At most one
// entry exists per (user, course) pair; a repeated add updates the notes.
type ScheduleEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ScheduleItem is a schedule entry joined with its course record, as
// returned when listing a user's schedule ordered by subject.
type ScheduleItem struct {
	Course  *Course   `json:"course"`
	Notes   *string   `json:"notes,omitempty"`
	AddedAt time.Time `json:"addedAt"`
}

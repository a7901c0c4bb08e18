package models

import "github.com/selim/coursepilot/internal/timetable"

// Course represents one schedulable section of a catalog course. Records are
// immutable once ingested except for Status, which may be refreshed.
type Course struct {
	ID           int64    `json:"id" db:"id"`
	Subject      string   `json:"subject" db:"subject"`
	CatalogNbr   string   `json:"catalogNbr" db:"catalog_nbr"`
	Section      string   `json:"section" db:"section"`
	ClassNbr     int      `json:"classNbr" db:"class_nbr"`
	Title        string   `json:"title" db:"title"`
	Component    string   `json:"component" db:"component"`
	Credits      int      `json:"credits" db:"credits"`
	Status       string   `json:"status" db:"status"`
	Meetings     []string `json:"meetings" db:"meetings"`
	Instructors  []string `json:"instructors" db:"instructors"`
	Description  *string  `json:"description,omitempty" db:"description"`
	Requirements *string  `json:"requirements,omitempty" db:"requirements"`
	DistrAttrs   []string `json:"distrAttrs" db:"distr_attrs"`
	Notes        *string  `json:"notes,omitempty" db:"notes"`
}

// Label returns the course label shown to users, e.g. "CS 2110".
func (c *Course) Label() string {
	return c.Subject + " " + c.CatalogNbr
}

// TimetableSection projects the record into the value type the scheduling
// core consumes. Meeting strings are passed through in their stored wire
// format; the core owns all parsing.
func (c *Course) TimetableSection() timetable.Section {
	return timetable.Section{
		Subject:    c.Subject,
		CatalogNbr: c.CatalogNbr,
		Section:    c.Section,
		Component:  c.Component,
		Title:      c.Title,
		Meetings:   c.Meetings,
	}
}

package models

// Component identifies the kind of section. The set is open: catalogs carry
// more kinds than these, so the field stays a plain string and these
// constants cover the kinds the enrollment workflow reasons about.
const (
	ComponentLecture     = "LEC"
	ComponentSeminar     = "SEM"
	ComponentDiscussion  = "DIS"
	ComponentLaboratory  = "LAB"
	ComponentIndependent = "IND"
)

// Enrollment status values as refreshed from the catalog feed.
const (
	StatusOpen     = "OPEN"
	StatusClosed   = "CLOSED"
	StatusWaitlist = "WAITLIST"
)

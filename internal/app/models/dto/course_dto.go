package dto

// CourseSearchRequest carries the catalog search filters. All fields are
// optional; empty filters match everything.
type CourseSearchRequest struct {
	Subject          string `form:"subject" json:"subject,omitempty"`
	CatalogNbrPrefix string `form:"catalogNbrPrefix" json:"catalogNbrPrefix,omitempty"`
	MinCredits       int    `form:"minCredits" json:"minCredits,omitempty"`
	MaxCredits       int    `form:"maxCredits" json:"maxCredits,omitempty"`
	Instructor       string `form:"instructor" json:"instructor,omitempty"`
	DayPattern       string `form:"dayPattern" json:"dayPattern,omitempty"`
	DistrAttr        string `form:"distrAttr" json:"distrAttr,omitempty"`
	Query            string `form:"query" json:"query,omitempty"`
	Limit            int    `form:"limit" json:"limit,omitempty"`
}

// UpdateStatusRequest refreshes the enrollment status of one section.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"CLOSED"`
}

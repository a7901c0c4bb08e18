package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/selim/coursepilot/internal/app/models"
	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/app/services"
	"github.com/selim/coursepilot/internal/pkg/apperrors"
)

// NewSearchCoursesTool exposes the filtered catalog search.
func NewSearchCoursesTool(catalog *services.CatalogService) *Tool {
	return &Tool{
		Name:        "search_courses",
		Description: "Search the course catalog by subject, catalog number prefix, credits, instructor, meeting days, distribution attribute, or a free-text description.",
		Category:    CategoryCatalog,
		Schema: Schema{
			Required: []string{},
			Properties: map[string]Property{
				"subject":          {Type: "string", Description: "Subject code, e.g. CS"},
				"catalogNbrPrefix": {Type: "string", Description: "Catalog number prefix, e.g. 2 for 2000-level"},
				"minCredits":       {Type: "integer", Description: "Minimum credit count"},
				"maxCredits":       {Type: "integer", Description: "Maximum credit count"},
				"instructor":       {Type: "string", Description: "Instructor name substring"},
				"dayPattern":       {Type: "string", Description: "Meeting day pattern substring, e.g. MW"},
				"distrAttr":        {Type: "string", Description: "Distribution requirement tag, exact match"},
				"query":            {Type: "string", Description: "Free-text description for semantic lookup"},
				"limit":            {Type: "integer", Description: "Maximum results", Default: 10},
			},
		},
		Execute: func(ctx context.Context, _ string, args map[string]any) (string, error) {
			req := dto.CourseSearchRequest{
				Subject:          stringArg(args, "subject"),
				CatalogNbrPrefix: stringArg(args, "catalogNbrPrefix"),
				MinCredits:       intArg(args, "minCredits"),
				MaxCredits:       intArg(args, "maxCredits"),
				Instructor:       stringArg(args, "instructor"),
				DayPattern:       stringArg(args, "dayPattern"),
				DistrAttr:        stringArg(args, "distrAttr"),
				Query:            stringArg(args, "query"),
				Limit:            intArg(args, "limit"),
			}

			courses, err := catalog.SearchCourses(ctx, req)
			if err != nil {
				return "", err
			}
			if len(courses) == 0 {
				return "No courses in the catalog match those criteria.", nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Found %d course(s):", len(courses))
			for _, c := range courses {
				b.WriteString("\n" + summarizeCourse(c))
			}
			return b.String(), nil
		},
	}
}

// NewCourseDetailsTool exposes a single-section lookup, including sibling
// sections so the model can walk the student through component selection.
func NewCourseDetailsTool(catalog *services.CatalogService) *Tool {
	return &Tool{
		Name:        "get_course_details",
		Description: "Get full details of one course section by class number, or every section of a course by subject and catalog number.",
		Category:    CategoryCatalog,
		Schema: Schema{
			Required: []string{},
			Properties: map[string]Property{
				"classNbr":   {Type: "integer", Description: "Unique class number of a section"},
				"subject":    {Type: "string", Description: "Subject code, used with catalogNbr"},
				"catalogNbr": {Type: "string", Description: "Catalog number, used with subject"},
			},
		},
		Execute: func(ctx context.Context, _ string, args map[string]any) (string, error) {
			if classNbr := intArg(args, "classNbr"); classNbr > 0 {
				course, err := catalog.GetCourse(ctx, classNbr)
				if err != nil {
					return messageForLookupError(err)
				}
				return describeCourse(course), nil
			}

			subject := stringArg(args, "subject")
			catalogNbr := stringArg(args, "catalogNbr")
			if subject == "" || catalogNbr == "" {
				return "Provide either a class number or both a subject and catalog number.", nil
			}

			sections, err := catalog.GetSections(ctx, subject, catalogNbr)
			if err != nil {
				return messageForLookupError(err)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s %s — %s, %d section(s):", strings.ToUpper(subject), catalogNbr, sections[0].Title, len(sections))
			for _, c := range sections {
				fmt.Fprintf(&b, "\n%s %s (class %d): %s, %s", c.Component, c.Section, c.ClassNbr,
					strings.Join(c.Meetings, "; "), c.Status)
			}
			return b.String(), nil
		},
	}
}

// messageForLookupError converts a not-found into a conversational reply;
// anything else propagates.
func messageForLookupError(err error) (string, error) {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return err.Error(), nil
	}
	return "", err
}

func summarizeCourse(c *models.Course) string {
	meetings := strings.Join(c.Meetings, "; ")
	if meetings == "" {
		meetings = "meeting times TBA"
	}
	return fmt.Sprintf("%s %s (%s, class %d): %s — %s, %d credits, %s",
		c.Label(), c.Section, c.Component, c.ClassNbr, c.Title, meetings, c.Credits, c.Status)
}

func describeCourse(c *models.Course) string {
	var b strings.Builder
	b.WriteString(summarizeCourse(c))
	if len(c.Instructors) > 0 {
		fmt.Fprintf(&b, "\nInstructors: %s", strings.Join(c.Instructors, ", "))
	}
	if c.Description != nil && *c.Description != "" {
		fmt.Fprintf(&b, "\n%s", *c.Description)
	}
	if c.Requirements != nil && *c.Requirements != "" {
		fmt.Fprintf(&b, "\nRequirements: %s", *c.Requirements)
	}
	if len(c.DistrAttrs) > 0 {
		fmt.Fprintf(&b, "\nDistribution: %s", strings.Join(c.DistrAttrs, ", "))
	}
	if c.Notes != nil && *c.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", *c.Notes)
	}
	return b.String()
}

package tools

import (
	"context"
	"fmt"

	"github.com/selim/coursepilot/internal/app/services"
)

// NewAddCourseTool exposes the add-course workflow. Conflicts are appended
// to the reply as warnings, never as refusals.
func NewAddCourseTool(schedule *services.ScheduleService) *Tool {
	return &Tool{
		Name:        "add_course",
		Description: "Add a course section to the student's schedule by class number. Reports time conflicts with already-scheduled courses and any discussion or lab sections that still need to be chosen.",
		Category:    CategorySchedule,
		Schema: Schema{
			Required: []string{"classNbr"},
			Properties: map[string]Property{
				"classNbr": {Type: "integer", Description: "Unique class number of the section to add"},
				"notes":    {Type: "string", Description: "Optional note to store with the entry"},
			},
		},
		Execute: func(ctx context.Context, userID string, args map[string]any) (string, error) {
			classNbr := intArg(args, "classNbr")
			if classNbr <= 0 {
				return "A valid class number is required to add a course.", nil
			}

			result, err := schedule.AddCourse(ctx, userID, classNbr, stringArg(args, "notes"))
			if err != nil {
				return messageForLookupError(err)
			}
			return result.Message, nil
		},
	}
}

// NewRemoveCourseTool exposes the one-to-many removal: every enrolled
// section of the course goes, not just one row.
func NewRemoveCourseTool(schedule *services.ScheduleService) *Tool {
	return &Tool{
		Name:        "remove_course",
		Description: "Remove a course from the student's schedule by subject and catalog number. Removes every enrolled section of that course, including its discussion or lab.",
		Category:    CategorySchedule,
		Schema: Schema{
			Required: []string{"subject", "catalogNbr"},
			Properties: map[string]Property{
				"subject":    {Type: "string", Description: "Subject code, e.g. CS"},
				"catalogNbr": {Type: "string", Description: "Catalog number, e.g. 2110"},
			},
		},
		Execute: func(ctx context.Context, userID string, args map[string]any) (string, error) {
			subject := stringArg(args, "subject")
			catalogNbr := stringArg(args, "catalogNbr")
			if subject == "" || catalogNbr == "" {
				return "Both a subject and a catalog number are required to remove a course.", nil
			}

			result, err := schedule.RemoveCourse(ctx, userID, subject, catalogNbr)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		},
	}
}

// NewViewScheduleTool exposes the dual text/calendar view.
func NewViewScheduleTool(schedule *services.ScheduleService) *Tool {
	return &Tool{
		Name:        "view_schedule",
		Description: "Show the student's current schedule grouped by weekday, with a link to a rendered weekly calendar image when available.",
		Category:    CategorySchedule,
		Schema:      Schema{Required: []string{}, Properties: map[string]Property{}},
		Execute: func(ctx context.Context, userID string, args map[string]any) (string, error) {
			view, err := schedule.ViewSchedule(ctx, userID)
			if err != nil {
				return "", err
			}
			if view.CalendarURL == "" {
				return view.Message, nil
			}
			return fmt.Sprintf("%s\n\nWeekly calendar: %s", view.Message, view.CalendarURL), nil
		},
	}
}

// NewCheckConflictsTool exposes the explicit conflict scan.
func NewCheckConflictsTool(schedule *services.ScheduleService) *Tool {
	return &Tool{
		Name:        "check_schedule_conflicts",
		Description: "Check the student's schedule for time conflicts between any two scheduled courses.",
		Category:    CategorySchedule,
		Schema:      Schema{Required: []string{}, Properties: map[string]Property{}},
		Execute: func(ctx context.Context, userID string, args map[string]any) (string, error) {
			report, err := schedule.CheckConflicts(ctx, userID)
			if err != nil {
				return "", err
			}
			return report.Message, nil
		},
	}
}

// RegisterAll builds the fixed tool set over the two services and registers
// it on a fresh registry.
func RegisterAll(catalog *services.CatalogService, schedule *services.ScheduleService) *Registry {
	registry := NewRegistry()
	registry.MustRegister(NewSearchCoursesTool(catalog))
	registry.MustRegister(NewCourseDetailsTool(catalog))
	registry.MustRegister(NewAddCourseTool(schedule))
	registry.MustRegister(NewRemoveCourseTool(schedule))
	registry.MustRegister(NewViewScheduleTool(schedule))
	registry.MustRegister(NewCheckConflictsTool(schedule))
	return registry
}

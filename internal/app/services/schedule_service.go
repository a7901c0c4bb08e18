package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/selim/coursepilot/internal/app/models"
	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/app/repositories"
	"github.com/selim/coursepilot/internal/pkg/apperrors"
	"github.com/selim/coursepilot/internal/timetable"
	"github.com/selim/coursepilot/internal/timetable/calendar"
)

// ScheduleService implements the schedule mutation workflow: add with
// informational conflict warnings, one-to-many removal by course key, the
// dual text/calendar view, and the explicit conflict check.
type ScheduleService struct {
	catalog     CatalogStore
	store       ScheduleStore
	uploader    ImageUploader // optional, may be nil
	calendarCfg calendar.Config
	logger      zerolog.Logger
}

// NewScheduleService creates a new schedule service instance. uploader may
// be nil; the view then always degrades to text-only output.
func NewScheduleService(catalog CatalogStore, store ScheduleStore, uploader ImageUploader, calendarCfg calendar.Config, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		catalog:     catalog,
		store:       store,
		uploader:    uploader,
		calendarCfg: calendarCfg,
		logger:      logger,
	}
}

// AddCourse adds one section to the user's schedule.
//
// Conflicts with the rest of the schedule are detected and reported in the
// result but never block the insertion: the assistant should not refuse an
// enrollment action over a clash the student may intend. A duplicate add is
// absorbed by the store's upsert and refreshes the notes. When the course
// has sibling sections of other component kinds (a lecture with discussions
// or labs) and none of that kind is scheduled yet, the result lists them so
// the caller can resolve the remaining choice.
func (s *ScheduleService) AddCourse(ctx context.Context, userID string, classNbr int, notes string) (*dto.AddCourseResult, error) {
	course, err := s.catalog.GetByClassNbr(ctx, classNbr)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("no course with class number %d in the catalog", classNbr))
		}
		return nil, fmt.Errorf("error looking up course: %w", err)
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	if err := s.store.Upsert(ctx, userID, course.ID, notesPtr); err != nil {
		return nil, fmt.Errorf("error saving schedule entry: %w", err)
	}

	items, err := s.store.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading schedule: %w", err)
	}

	conflicts := s.conflictsAgainstSchedule(course, items)
	unresolved, err := s.unresolvedComponents(ctx, course, items)
	if err != nil {
		// Sibling lookup failing should not undo a completed add.
		s.logger.Warn().Err(err).Str("course", course.Label()).Msg("Could not check sibling sections")
		unresolved = nil
	}

	result := &dto.AddCourseResult{
		Course:               course,
		Conflicts:            conflicts,
		UnresolvedComponents: unresolved,
	}
	result.Message = buildAddMessage(course, conflicts, unresolved)
	return result, nil
}

// conflictsAgainstSchedule compares the added course against every other
// entry in the schedule, one pair at a time, so each reported conflict names
// the existing course first.
func (s *ScheduleService) conflictsAgainstSchedule(added *models.Course, items []*models.ScheduleItem) []timetable.Conflict {
	var conflicts []timetable.Conflict
	addedSection := added.TimetableSection()
	for _, item := range items {
		if item.Course.ID == added.ID {
			continue
		}
		pair := []timetable.Section{item.Course.TimetableSection(), addedSection}
		conflicts = append(conflicts, timetable.ScanConflicts(pair)...)
	}
	return conflicts
}

// unresolvedComponents returns sibling sections of the added course whose
// component kind is not yet represented in the user's schedule.
func (s *ScheduleService) unresolvedComponents(ctx context.Context, added *models.Course, items []*models.ScheduleItem) ([]*models.Course, error) {
	siblings, err := s.catalog.GetByKey(ctx, added.Subject, added.CatalogNbr)
	if err != nil {
		return nil, err
	}

	scheduled := make(map[string]bool)
	for _, item := range items {
		if item.Course.Subject == added.Subject && item.Course.CatalogNbr == added.CatalogNbr {
			scheduled[item.Course.Component] = true
		}
	}

	var unresolved []*models.Course
	for _, sib := range siblings {
		if sib.Component == added.Component || scheduled[sib.Component] {
			continue
		}
		unresolved = append(unresolved, sib)
	}
	return unresolved, nil
}

func buildAddMessage(course *models.Course, conflicts []timetable.Conflict, unresolved []*models.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Added %s %s (%s, class %d) to your schedule.",
		course.Label(), course.Section, course.Component, course.ClassNbr)

	for _, c := range conflicts {
		fmt.Fprintf(&b, "\nWarning: %s", c.Reason)
	}

	if len(unresolved) > 0 {
		kinds := make(map[string][]string)
		var order []string
		for _, sib := range unresolved {
			if _, seen := kinds[sib.Component]; !seen {
				order = append(order, sib.Component)
			}
			kinds[sib.Component] = append(kinds[sib.Component],
				fmt.Sprintf("%s (class %d, %s)", sib.Section, sib.ClassNbr, strings.Join(sib.Meetings, "; ")))
		}
		for _, kind := range order {
			fmt.Fprintf(&b, "\n%s also has %s sections you still need to pick from: %s.",
				course.Label(), kind, strings.Join(kinds[kind], ", "))
		}
	}

	return b.String()
}

// RemoveCourse deletes every scheduled section of the course identified by
// subject and catalog number. The scope is deliberate: removing a course
// drops its lecture and any discussion or lab in one operation.
func (s *ScheduleService) RemoveCourse(ctx context.Context, userID, subject, catalogNbr string) (*dto.RemoveCourseResult, error) {
	removed, err := s.store.DeleteByKey(ctx, userID, subject, catalogNbr)
	if err != nil {
		return nil, fmt.Errorf("error removing course: %w", err)
	}

	label := strings.ToUpper(subject) + " " + catalogNbr
	result := &dto.RemoveCourseResult{Removed: removed}
	if removed == 0 {
		result.Message = fmt.Sprintf("No sections of %s were in your schedule.", label)
	} else {
		result.Message = fmt.Sprintf("Removed %d section(s) of %s from your schedule.", removed, label)
	}
	return result, nil
}

// ViewSchedule returns the user's schedule as a day-grouped text summary
// plus, when rendering and upload succeed, a calendar image URL. Upload
// failure degrades to text-only output and is logged, never surfaced.
func (s *ScheduleService) ViewSchedule(ctx context.Context, userID string) (*dto.ScheduleView, error) {
	items, err := s.store.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading schedule: %w", err)
	}

	if len(items) == 0 {
		return &dto.ScheduleView{
			Message: "Your schedule is empty. Search the catalog and add a course to get started.",
		}, nil
	}

	view := &dto.ScheduleView{
		Items:   items,
		Message: buildScheduleText(items),
	}

	if s.uploader != nil {
		svg := calendar.RenderSVG(calendar.BuildLayout(sectionsOf(items)), s.calendarCfg)
		url, err := s.uploader.Upload(ctx, uuid.New().String()+".svg", svg)
		if err != nil {
			s.logger.Warn().Err(err).Str("userId", userID).Msg("Calendar upload failed, returning text-only schedule")
		} else {
			view.CalendarURL = url
		}
	}

	return view, nil
}

// CheckConflicts runs the exhaustive pairwise scan over the user's schedule.
// With fewer than two courses there is nothing to compare, so the caller
// gets guidance instead of an empty scan.
func (s *ScheduleService) CheckConflicts(ctx context.Context, userID string) (*dto.ConflictReport, error) {
	items, err := s.store.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading schedule: %w", err)
	}

	if len(items) < 2 {
		return &dto.ConflictReport{
			Message: "You need at least two courses in your schedule to check for conflicts.",
		}, nil
	}

	conflicts := timetable.ScanConflicts(sectionsOf(items))
	report := &dto.ConflictReport{Conflicts: conflicts}
	if len(conflicts) == 0 {
		report.Message = "No time conflicts found in your schedule."
	} else {
		reasons := make([]string, len(conflicts))
		for i, c := range conflicts {
			reasons[i] = c.Reason
		}
		report.Message = fmt.Sprintf("Found %d time conflict(s):\n%s", len(conflicts), strings.Join(reasons, "\n"))
	}
	return report, nil
}

func sectionsOf(items []*models.ScheduleItem) []timetable.Section {
	sections := make([]timetable.Section, len(items))
	for i, item := range items {
		sections[i] = item.Course.TimetableSection()
	}
	return sections
}

// scheduleLine is one meeting occurrence used for the text grouping.
type scheduleLine struct {
	start int
	text  string
}

// buildScheduleText renders the day -> "time — course: title" grouping.
func buildScheduleText(items []*models.ScheduleItem) string {
	dayNames := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	byDay := make([][]scheduleLine, 5)

	for _, item := range items {
		for _, raw := range item.Course.Meetings {
			m, ok := timetable.ParseMeeting(raw)
			if !ok {
				continue
			}
			parts := strings.Fields(raw)
			for i := 0; i < len(m.Days); i++ {
				day := strings.IndexByte(timetable.DayOrder, m.Days[i])
				if day < 0 {
					continue
				}
				byDay[day] = append(byDay[day], scheduleLine{
					start: m.Time.Start,
					text:  fmt.Sprintf("%s — %s: %s", parts[1], item.Course.Label(), item.Course.Title),
				})
			}
		}
	}

	var b strings.Builder
	b.WriteString("Your schedule:")
	for day, lines := range byDay {
		if len(lines) == 0 {
			continue
		}
		sort.SliceStable(lines, func(i, j int) bool { return lines[i].start < lines[j].start })
		fmt.Fprintf(&b, "\n%s:", dayNames[day])
		for _, line := range lines {
			fmt.Fprintf(&b, "\n  %s", line.text)
		}
	}
	return b.String()
}

package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/coursepilot/internal/app/models"
	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/app/repositories"
	"github.com/selim/coursepilot/internal/pkg/apperrors"
	"github.com/selim/coursepilot/internal/timetable/calendar"
)

// fakeCatalog is an in-memory CatalogStore.
type fakeCatalog struct {
	courses []*models.Course
}

func (f *fakeCatalog) GetByClassNbr(_ context.Context, classNbr int) (*models.Course, error) {
	for _, c := range f.courses {
		if c.ClassNbr == classNbr {
			return c, nil
		}
	}
	return nil, repositories.ErrCourseNotFound
}

func (f *fakeCatalog) GetByKey(_ context.Context, subject, catalogNbr string) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.Subject == strings.ToUpper(subject) && c.CatalogNbr == catalogNbr {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Search(_ context.Context, req dto.CourseSearchRequest) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if req.Subject != "" && c.Subject != strings.ToUpper(req.Subject) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCatalog) GetByIDs(_ context.Context, ids []int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, id := range ids {
		for _, c := range f.courses {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCatalog) UpdateStatus(_ context.Context, classNbr int, status string) error {
	for _, c := range f.courses {
		if c.ClassNbr == classNbr {
			c.Status = status
			return nil
		}
	}
	return repositories.ErrCourseNotFound
}

// fakeScheduleStore is an in-memory ScheduleStore with upsert semantics.
type fakeScheduleStore struct {
	catalog *fakeCatalog
	entries map[string]map[int64]*models.ScheduleEntry // userID -> courseID -> entry
}

func newFakeScheduleStore(catalog *fakeCatalog) *fakeScheduleStore {
	return &fakeScheduleStore{
		catalog: catalog,
		entries: make(map[string]map[int64]*models.ScheduleEntry),
	}
}

func (f *fakeScheduleStore) Upsert(_ context.Context, userID string, courseID int64, notes *string) error {
	if f.entries[userID] == nil {
		f.entries[userID] = make(map[int64]*models.ScheduleEntry)
	}
	if existing, ok := f.entries[userID][courseID]; ok {
		existing.Notes = notes
		return nil
	}
	f.entries[userID][courseID] = &models.ScheduleEntry{
		UserID:    userID,
		CourseID:  courseID,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeScheduleStore) ListForUser(_ context.Context, userID string) ([]*models.ScheduleItem, error) {
	var items []*models.ScheduleItem
	for courseID, entry := range f.entries[userID] {
		for _, c := range f.catalog.courses {
			if c.ID == courseID {
				items = append(items, &models.ScheduleItem{Course: c, Notes: entry.Notes, AddedAt: entry.CreatedAt})
			}
		}
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].Course, items[j].Course
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		if a.CatalogNbr != b.CatalogNbr {
			return a.CatalogNbr < b.CatalogNbr
		}
		return a.Section < b.Section
	})
	return items, nil
}

func (f *fakeScheduleStore) DeleteByKey(_ context.Context, userID, subject, catalogNbr string) (int64, error) {
	var removed int64
	for courseID := range f.entries[userID] {
		for _, c := range f.catalog.courses {
			if c.ID == courseID && c.Subject == strings.ToUpper(subject) && c.CatalogNbr == catalogNbr {
				delete(f.entries[userID], courseID)
				removed++
			}
		}
	}
	return removed, nil
}

// fakeUploader records uploads and can be told to fail.
type fakeUploader struct {
	fail     bool
	uploaded [][]byte
}

func (f *fakeUploader) Upload(_ context.Context, filename string, data []byte) (string, error) {
	if f.fail {
		return "", errors.New("image host unreachable")
	}
	f.uploaded = append(f.uploaded, data)
	return "https://files.example.net/" + filename, nil
}

func testCatalog() *fakeCatalog {
	desc := "Intermediate programming in a high-level language."
	return &fakeCatalog{courses: []*models.Course{
		{ID: 1, Subject: "CS", CatalogNbr: "2110", Section: "LEC001", ClassNbr: 11001,
			Title: "Object-Oriented Programming", Component: "LEC", Credits: 3, Status: "OPEN",
			Meetings: []string{"MW 10:10AM-11:25AM"}, Instructors: []string{"Gries, D."}, Description: &desc},
		{ID: 2, Subject: "CS", CatalogNbr: "2110", Section: "DIS201", ClassNbr: 11002,
			Title: "Object-Oriented Programming", Component: "DIS", Credits: 0, Status: "OPEN",
			Meetings: []string{"F 02:30PM-03:20PM"}},
		{ID: 3, Subject: "CS", CatalogNbr: "2110", Section: "DIS202", ClassNbr: 11003,
			Title: "Object-Oriented Programming", Component: "DIS", Credits: 0, Status: "OPEN",
			Meetings: []string{"F 03:35PM-04:25PM"}},
		{ID: 4, Subject: "MATH", CatalogNbr: "1920", Section: "LEC002", ClassNbr: 12001,
			Title: "Multivariable Calculus", Component: "LEC", Credits: 4, Status: "OPEN",
			Meetings: []string{"MW 11:15AM-12:05PM"}},
		{ID: 5, Subject: "PHYS", CatalogNbr: "1112", Section: "LEC001", ClassNbr: 13001,
			Title: "Mechanics and Heat", Component: "LEC", Credits: 4, Status: "OPEN",
			Meetings: []string{"TR 02:55PM-04:10PM"}},
	}}
}

func newTestService(uploader ImageUploader) (*ScheduleService, *fakeScheduleStore) {
	catalog := testCatalog()
	store := newFakeScheduleStore(catalog)
	svc := NewScheduleService(catalog, store, uploader, calendar.DefaultConfig(), zerolog.Nop())
	return svc, store
}

func TestAddCourseNotFound(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.AddCourse(context.Background(), "u1", 99999, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestAddCourseReportsConflictButInserts(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	first, err := svc.AddCourse(ctx, "u1", 11001, "")
	require.NoError(t, err)
	assert.Empty(t, first.Conflicts)

	// MATH 1920 overlaps CS 2110 on M and W; the add must still succeed.
	second, err := svc.AddCourse(ctx, "u1", 12001, "")
	require.NoError(t, err)
	assert.Len(t, second.Conflicts, 1)
	assert.Contains(t, second.Message, "Warning")

	items, err := store.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, items, 2, "conflicting course must be inserted regardless")
}

func TestAddCourseDuplicateUpdatesNotes(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	_, err := svc.AddCourse(ctx, "u1", 13001, "first try")
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, "u1", 13001, "switched to pass/fail")
	require.NoError(t, err)

	items, err := store.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1, "duplicate add must not create a second entry")
	require.NotNil(t, items[0].Notes)
	assert.Equal(t, "switched to pass/fail", *items[0].Notes)
}

func TestAddCourseListsUnresolvedComponents(t *testing.T) {
	svc, _ := newTestService(nil)

	result, err := svc.AddCourse(context.Background(), "u1", 11001, "")
	require.NoError(t, err)

	// The CS 2110 lecture has two discussion sections, neither scheduled.
	require.Len(t, result.UnresolvedComponents, 2)
	assert.Contains(t, result.Message, "DIS")
	assert.Contains(t, result.Message, "DIS201")
}

func TestAddCourseComponentResolved(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.AddCourse(ctx, "u1", 11002, "") // discussion first
	require.NoError(t, err)
	result, err := svc.AddCourse(ctx, "u1", 11001, "") // then the lecture
	require.NoError(t, err)

	assert.Empty(t, result.UnresolvedComponents, "scheduled discussion satisfies the component")
}

func TestRemoveCourseDeletesAllSections(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	for _, classNbr := range []int{11001, 11002, 13001} {
		_, err := svc.AddCourse(ctx, "u1", classNbr, "")
		require.NoError(t, err)
	}
	// Another user keeps their own CS 2110 enrollment.
	_, err := svc.AddCourse(ctx, "u2", 11001, "")
	require.NoError(t, err)

	result, err := svc.RemoveCourse(ctx, "u1", "CS", "2110")
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Removed, "lecture and discussion both removed")

	items, err := store.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "PHYS", items[0].Course.Subject)

	other, err := store.ListForUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1, "other users are untouched")
}

func TestRemoveCourseNothingScheduled(t *testing.T) {
	svc, _ := newTestService(nil)

	result, err := svc.RemoveCourse(context.Background(), "u1", "CS", "2110")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Removed)
	assert.Contains(t, result.Message, "No sections")
}

func TestViewScheduleEmpty(t *testing.T) {
	uploader := &fakeUploader{}
	svc, _ := newTestService(uploader)

	view, err := svc.ViewSchedule(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Empty(t, view.CalendarURL)
	assert.Contains(t, view.Message, "empty")
	assert.Empty(t, uploader.uploaded, "no layout computed for an empty schedule")
}

func TestViewScheduleTextAndCalendar(t *testing.T) {
	uploader := &fakeUploader{}
	svc, _ := newTestService(uploader)
	ctx := context.Background()

	_, err := svc.AddCourse(ctx, "u1", 11001, "")
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, "u1", 13001, "")
	require.NoError(t, err)

	view, err := svc.ViewSchedule(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
	assert.Contains(t, view.Message, "Monday:")
	assert.Contains(t, view.Message, "10:10AM-11:25AM — CS 2110: Object-Oriented Programming")
	assert.Contains(t, view.CalendarURL, "https://files.example.net/")

	require.Len(t, uploader.uploaded, 1)
	assert.Contains(t, string(uploader.uploaded[0]), "<svg")
}

func TestViewScheduleUploadFailureDegradesToText(t *testing.T) {
	svc, _ := newTestService(&fakeUploader{fail: true})
	ctx := context.Background()

	_, err := svc.AddCourse(ctx, "u1", 11001, "")
	require.NoError(t, err)

	view, err := svc.ViewSchedule(ctx, "u1")
	require.NoError(t, err, "upload failure must not surface as an error")
	assert.Empty(t, view.CalendarURL)
	assert.Contains(t, view.Message, "CS 2110")
}

func TestCheckConflictsNeedsTwoCourses(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	report, err := svc.CheckConflicts(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, report.Message, "at least two")

	_, err = svc.AddCourse(ctx, "u1", 11001, "")
	require.NoError(t, err)
	report, err = svc.CheckConflicts(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, report.Message, "at least two")
}

func TestCheckConflictsEndToEnd(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.AddCourse(ctx, "u1", 11001, "") // CS 2110 MW 10:10-11:25
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, "u1", 12001, "") // MATH 1920 MW 11:15-12:05
	require.NoError(t, err)

	report, err := svc.CheckConflicts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, report.Conflicts, 1)
	c := report.Conflicts[0]
	assert.ElementsMatch(t,
		[]string{"CS 2110", "MATH 1920"},
		[]string{c.CourseA, c.CourseB})
	assert.Contains(t, report.Message, "1 time conflict")
}

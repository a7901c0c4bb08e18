package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/pkg/apperrors"
)

// fakeIndex is an in-memory SemanticIndex.
type fakeIndex struct {
	ids  []int64
	err  error
	seen string
}

func (f *fakeIndex) Query(_ context.Context, text string, _ int) ([]int64, error) {
	f.seen = text
	return f.ids, f.err
}

func TestGetCourse(t *testing.T) {
	svc := NewCatalogService(testCatalog(), nil, zerolog.Nop())

	course, err := svc.GetCourse(context.Background(), 11001)
	require.NoError(t, err)
	assert.Equal(t, "CS 2110", course.Label())

	_, err = svc.GetCourse(context.Background(), 99999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestGetSections(t *testing.T) {
	svc := NewCatalogService(testCatalog(), nil, zerolog.Nop())

	sections, err := svc.GetSections(context.Background(), "cs", "2110")
	require.NoError(t, err)
	assert.Len(t, sections, 3, "lecture plus two discussions")

	_, err = svc.GetSections(context.Background(), "ART", "1100")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestSearchCoursesStructuredHit(t *testing.T) {
	index := &fakeIndex{ids: []int64{5}}
	svc := NewCatalogService(testCatalog(), index, zerolog.Nop())

	courses, err := svc.SearchCourses(context.Background(), dto.CourseSearchRequest{Subject: "MATH"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Empty(t, index.seen, "semantic index not consulted when filters match")
}

func TestSearchCoursesSemanticFallback(t *testing.T) {
	index := &fakeIndex{ids: []int64{5, 1}}
	svc := NewCatalogService(testCatalog(), index, zerolog.Nop())

	courses, err := svc.SearchCourses(context.Background(), dto.CourseSearchRequest{
		Subject: "ASTRO", Query: "courses about motion and forces",
	})
	require.NoError(t, err)
	assert.Equal(t, "courses about motion and forces", index.seen)
	require.Len(t, courses, 2)
	assert.Equal(t, "PHYS", courses[0].Subject, "semantic hit order preserved")
}

func TestSearchCoursesIndexFailureDegrades(t *testing.T) {
	index := &fakeIndex{err: errors.New("index down")}
	svc := NewCatalogService(testCatalog(), index, zerolog.Nop())

	courses, err := svc.SearchCourses(context.Background(), dto.CourseSearchRequest{
		Subject: "ASTRO", Query: "anything",
	})
	require.NoError(t, err, "index failure must not surface")
	assert.Empty(t, courses)
}

func TestSetCourseStatus(t *testing.T) {
	catalog := testCatalog()
	svc := NewCatalogService(catalog, nil, zerolog.Nop())

	require.NoError(t, svc.SetCourseStatus(context.Background(), 11001, "CLOSED"))

	course, err := svc.GetCourse(context.Background(), 11001)
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", course.Status)
}

func TestSetCourseStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewCatalogService(testCatalog(), nil, zerolog.Nop())

	err := svc.SetCourseStatus(context.Background(), 11001, "FULL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestSetCourseStatusUnknownCourse(t *testing.T) {
	svc := NewCatalogService(testCatalog(), nil, zerolog.Nop())

	err := svc.SetCourseStatus(context.Background(), 99999, "OPEN")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

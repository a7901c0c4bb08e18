package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/selim/coursepilot/internal/app/models"
	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/app/repositories"
	"github.com/selim/coursepilot/internal/pkg/apperrors"
)

// CatalogService handles course catalog lookups and search.
type CatalogService struct {
	catalog  CatalogStore
	semantic SemanticIndex // optional, may be nil
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalog service instance. semantic may be
// nil when no vector index is configured; descriptive queries then fall back
// to structured filters only.
func NewCatalogService(catalog CatalogStore, semantic SemanticIndex, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalog:  catalog,
		semantic: semantic,
		logger:   logger,
	}
}

// GetCourse retrieves a single section by class number.
func (s *CatalogService) GetCourse(ctx context.Context, classNbr int) (*models.Course, error) {
	if classNbr <= 0 {
		return nil, apperrors.NewBadRequestError("class number must be positive")
	}

	course, err := s.catalog.GetByClassNbr(ctx, classNbr)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("no course with class number %d in the catalog", classNbr))
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetSections retrieves every section of a course (lecture, discussion,
// lab) under one subject and catalog number.
func (s *CatalogService) GetSections(ctx context.Context, subject, catalogNbr string) ([]*models.Course, error) {
	sections, err := s.catalog.GetByKey(ctx, subject, catalogNbr)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sections: %w", err)
	}
	if len(sections) == 0 {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %s is not in the catalog", subject, catalogNbr))
	}
	return sections, nil
}

// SetCourseStatus refreshes the enrollment status of one section, the only
// course field that changes between catalog imports.
func (s *CatalogService) SetCourseStatus(ctx context.Context, classNbr int, status string) error {
	switch status {
	case models.StatusOpen, models.StatusClosed, models.StatusWaitlist:
	default:
		return apperrors.NewBadRequestError(fmt.Sprintf("unknown enrollment status %q", status))
	}

	if err := s.catalog.UpdateStatus(ctx, classNbr, status); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("no course with class number %d in the catalog", classNbr))
		}
		return fmt.Errorf("error updating course status: %w", err)
	}

	s.logger.Info().Int("classNbr", classNbr).Str("status", status).Msg("Course status updated")
	return nil
}

// SearchCourses runs a filtered catalog search. When the request carries a
// free-text query and the structured filters match nothing, the semantic
// index is consulted and its hits resolved back into catalog records. Index
// failures degrade to the structured result, logged but never surfaced.
func (s *CatalogService) SearchCourses(ctx context.Context, req dto.CourseSearchRequest) ([]*models.Course, error) {
	courses, err := s.catalog.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error searching catalog: %w", err)
	}

	if len(courses) > 0 || req.Query == "" || s.semantic == nil {
		return courses, nil
	}

	k := req.Limit
	if k <= 0 {
		k = 10
	}
	ids, err := s.semantic.Query(ctx, req.Query, k)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", req.Query).Msg("Semantic index unavailable, returning structured results only")
		return courses, nil
	}

	resolved, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error resolving semantic hits: %w", err)
	}
	return resolved, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selim/coursepilot/internal/app/models"
	"github.com/selim/coursepilot/internal/app/models/dto"
)

// Course error types
var (
	ErrCourseNotFound = errors.New("course not found")
)

const courseColumns = `id, subject, catalog_nbr, section, class_nbr, title, component,
	credits, status, meetings, instructors, description, requirements, distr_attrs, notes`

// CourseRepository handles database operations for the course catalog.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Subject,
		&course.CatalogNbr,
		&course.Section,
		&course.ClassNbr,
		&course.Title,
		&course.Component,
		&course.Credits,
		&course.Status,
		&course.Meetings,
		&course.Instructors,
		&course.Description,
		&course.Requirements,
		&course.DistrAttrs,
		&course.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetByClassNbr retrieves a course section by its unique class number.
func (r *CourseRepository) GetByClassNbr(ctx context.Context, classNbr int) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE class_nbr = $1`, courseColumns)

	course, err := scanCourse(r.db.QueryRow(ctx, query, classNbr))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetByKey retrieves every section of a course identified by subject and
// catalog number, lectures first, then ordered by section identifier.
func (r *CourseRepository) GetByKey(ctx context.Context, subject, catalogNbr string) ([]*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM courses
		WHERE subject = $1 AND catalog_nbr = $2
		ORDER BY component, section`, courseColumns)

	rows, err := r.db.Query(ctx, query, strings.ToUpper(subject), catalogNbr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCourses(rows)
}

// Search retrieves courses matching the given filters. Filters compose with
// AND; an empty request returns the whole catalog up to the limit.
func (r *CourseRepository) Search(ctx context.Context, req dto.CourseSearchRequest) ([]*models.Course, error) {
	var (
		where []string
		args  []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if req.Subject != "" {
		where = append(where, "subject = "+arg(strings.ToUpper(req.Subject)))
	}
	if req.CatalogNbrPrefix != "" {
		where = append(where, "catalog_nbr LIKE "+arg(req.CatalogNbrPrefix+"%"))
	}
	if req.MinCredits > 0 {
		where = append(where, "credits >= "+arg(req.MinCredits))
	}
	if req.MaxCredits > 0 {
		where = append(where, "credits <= "+arg(req.MaxCredits))
	}
	if req.Instructor != "" {
		where = append(where, "EXISTS (SELECT 1 FROM unnest(instructors) i WHERE i ILIKE "+arg("%"+req.Instructor+"%")+")")
	}
	if req.DayPattern != "" {
		where = append(where, "EXISTS (SELECT 1 FROM unnest(meetings) m WHERE m LIKE "+arg(req.DayPattern+" %")+")")
	}
	if req.DistrAttr != "" {
		where = append(where, arg(req.DistrAttr)+" = ANY(distr_attrs)")
	}

	query := fmt.Sprintf(`SELECT %s FROM courses`, courseColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY subject, catalog_nbr, section"

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	query += " LIMIT " + arg(limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

// GetByIDs retrieves courses for a set of primary keys, used when resolving
// semantic-index hits back into full records. Order follows the input ids.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = ANY($1)`, courseColumns)
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses, err := collectCourses(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	ordered := make([]*models.Course, 0, len(courses))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// UpdateStatus refreshes the enrollment status of a section. Status is the
// only mutable field of an ingested course record.
func (r *CourseRepository) UpdateStatus(ctx context.Context, classNbr int, status string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET status = $1 WHERE class_nbr = $2`, status, classNbr)
	if err != nil {
		return fmt.Errorf("error updating course status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

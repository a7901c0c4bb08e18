package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selim/coursepilot/internal/app/models"
)

// ScheduleRepository handles database operations for user schedules.
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// Upsert inserts a schedule entry or, when the (user, course) pair already
// exists, updates its notes. The conditional insert is a single statement:
// it is the only concurrency guard for the uniqueness invariant, so it must
// stay atomic at the storage layer rather than read-modify-write here.
func (r *ScheduleRepository) Upsert(ctx context.Context, userID string, courseID int64, notes *string) error {
	query := `
		INSERT INTO schedule_entries (user_id, course_id, notes)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, course_id)
		DO UPDATE SET notes = EXCLUDED.notes
	`

	if _, err := r.db.Exec(ctx, query, userID, courseID, notes); err != nil {
		return fmt.Errorf("error upserting schedule entry: %w", err)
	}
	return nil
}

// ListForUser returns the user's full schedule joined with course records,
// ordered by subject then catalog number.
func (r *ScheduleRepository) ListForUser(ctx context.Context, userID string) ([]*models.ScheduleItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, s.notes, s.created_at
		FROM schedule_entries s
		JOIN courses c ON c.id = s.course_id
		WHERE s.user_id = $1
		ORDER BY c.subject, c.catalog_nbr, c.section`,
		prefixColumns("c", courseColumns))

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing schedule: %w", err)
	}
	defer rows.Close()

	var items []*models.ScheduleItem
	for rows.Next() {
		var (
			course models.Course
			item   models.ScheduleItem
		)
		if err := rows.Scan(
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
			&item.Notes,
			&item.AddedAt,
		); err != nil {
			return nil, err
		}
		item.Course = &course
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteByKey removes every schedule entry of the user whose course matches
// the subject and catalog number, all sections of that course at once.
// Returns the number of entries deleted.
func (r *ScheduleRepository) DeleteByKey(ctx context.Context, userID, subject, catalogNbr string) (int64, error) {
	query := `
		DELETE FROM schedule_entries s
		USING courses c
		WHERE s.course_id = c.id
		  AND s.user_id = $1
		  AND c.subject = $2
		  AND c.catalog_nbr = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, userID, strings.ToUpper(subject), catalogNbr)
	if err != nil {
		return 0, fmt.Errorf("error deleting schedule entries: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

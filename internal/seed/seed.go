package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/selim/coursepilot/internal/app/models"
)

// seedCourse is one catalog row inserted at startup.
type seedCourse struct {
	Subject     string
	CatalogNbr  string
	Section     string
	ClassNbr    int
	Title       string
	Component   string
	Credits     int
	Status      string
	Meetings    []string
	Instructors []string
	Description string
	DistrAttrs  []string
}

var defaultCatalog = []seedCourse{
	{
		Subject: "CS", CatalogNbr: "2110", Section: "LEC001", ClassNbr: 11001,
		Title: "Object-Oriented Programming and Data Structures", Component: models.ComponentLecture,
		Credits: 4, Status: models.StatusOpen,
		Meetings:    []string{"MW 10:10AM-11:25AM"},
		Instructors: []string{"Gries, D."},
		Description: "Intermediate programming in a high-level language. Emphasizes program structure, data abstraction, recursion, and object-oriented design.",
	},
	{
		Subject: "CS", CatalogNbr: "2110", Section: "DIS201", ClassNbr: 11002,
		Title: "Object-Oriented Programming and Data Structures", Component: models.ComponentDiscussion,
		Credits: 0, Status: models.StatusOpen,
		Meetings: []string{"F 02:30PM-03:20PM"},
	},
	{
		Subject: "CS", CatalogNbr: "2110", Section: "DIS202", ClassNbr: 11003,
		Title: "Object-Oriented Programming and Data Structures", Component: models.ComponentDiscussion,
		Credits: 0, Status: models.StatusOpen,
		Meetings: []string{"F 03:35PM-04:25PM"},
	},
	{
		Subject: "MATH", CatalogNbr: "1920", Section: "LEC002", ClassNbr: 12001,
		Title: "Multivariable Calculus for Engineers", Component: models.ComponentLecture,
		Credits: 4, Status: models.StatusOpen,
		Meetings:    []string{"MW 11:15AM-12:05PM", "F 11:15AM-12:05PM"},
		Instructors: []string{"Zworski, A."},
		DistrAttrs:  []string{"MQR-AS"},
	},
	{
		Subject: "PHYS", CatalogNbr: "1112", Section: "LEC001", ClassNbr: 13001,
		Title: "Physics I: Mechanics and Heat", Component: models.ComponentLecture,
		Credits: 4, Status: models.StatusOpen,
		Meetings:    []string{"TR 02:55PM-04:10PM"},
		Instructors: []string{"Davis, R."},
		DistrAttrs:  []string{"PHS-AS"},
	},
	{
		Subject: "PHYS", CatalogNbr: "1112", Section: "LAB401", ClassNbr: 13002,
		Title: "Physics I: Mechanics and Heat", Component: models.ComponentLaboratory,
		Credits: 0, Status: models.StatusClosed,
		Meetings: []string{"W 01:25PM-03:20PM"},
	},
	{
		Subject: "CS", CatalogNbr: "4999", Section: "IND601", ClassNbr: 15001,
		Title: "Independent Research", Component: models.ComponentIndependent,
		Credits: 3, Status: models.StatusOpen,
		Meetings:    []string{"TBA"},
		Instructors: []string{"Staff"},
	},
	{
		Subject: "ENGL", CatalogNbr: "1110", Section: "SEM101", ClassNbr: 14001,
		Title: "First-Year Writing Seminar", Component: models.ComponentSeminar,
		Credits: 3, Status: models.StatusWaitlist,
		Meetings:    []string{"TR 10:10AM-11:25AM"},
		Instructors: []string{"Morgan, E."},
		DistrAttrs:  []string{"WRT-AS"},
	},
}

// CreateDefaultData inserts the sample catalog if the catalog is empty.
// A populated catalog is left untouched so real imports survive restarts.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count catalog rows: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int("courses", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	lgr.Info().Int("courses", len(defaultCatalog)).Msg("Seeding sample course catalog")

	for _, course := range defaultCatalog {
		var description *string
		if course.Description != "" {
			description = &course.Description
		}

		_, err := dbPool.Exec(ctx, `
			INSERT INTO courses (subject, catalog_nbr, section, class_nbr, title, component,
				credits, status, meetings, instructors, description, distr_attrs)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (class_nbr) DO NOTHING`,
			course.Subject, course.CatalogNbr, course.Section, course.ClassNbr,
			course.Title, course.Component, course.Credits, course.Status,
			course.Meetings, course.Instructors, description, course.DistrAttrs,
		)
		if err != nil {
			return fmt.Errorf("failed to seed %s %s %s: %w", course.Subject, course.CatalogNbr, course.Section, err)
		}
	}

	return nil
}

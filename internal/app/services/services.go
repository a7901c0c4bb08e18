package services

import (
	"context"

	"github.com/selim/coursepilot/internal/app/models"
	"github.com/selim/coursepilot/internal/app/models/dto"
)

// Services defined in this package:
// - CatalogService: course lookup and filtered/semantic search
// - ScheduleService: the schedule mutation workflow (add, remove, view,
//   explicit conflict check)
//
// Services take their collaborators as interfaces so tests can substitute
// in-memory fakes; the pgx repositories satisfy the store interfaces.

// CatalogStore is the catalog collaborator contract.
type CatalogStore interface {
	GetByClassNbr(ctx context.Context, classNbr int) (*models.Course, error)
	GetByKey(ctx context.Context, subject, catalogNbr string) ([]*models.Course, error)
	Search(ctx context.Context, req dto.CourseSearchRequest) ([]*models.Course, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error)
	UpdateStatus(ctx context.Context, classNbr int, status string) error
}

// ScheduleStore is the schedule persistence contract. Upsert must be atomic
// at the storage layer: it is the sole guard of the one-entry-per-(user,
// course) invariant under concurrent adds.
type ScheduleStore interface {
	Upsert(ctx context.Context, userID string, courseID int64, notes *string) error
	ListForUser(ctx context.Context, userID string) ([]*models.ScheduleItem, error)
	DeleteByKey(ctx context.Context, userID, subject, catalogNbr string) (int64, error)
}

// ImageUploader publishes a rendered document and returns a retrievable URL
// valid for a bounded window. Failures are expected and non-fatal.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// SemanticIndex is the external nearest-neighbor lookup over course
// descriptions. It returns catalog record ids; embedding generation lives
// entirely on the other side of this interface.
type SemanticIndex interface {
	Query(ctx context.Context, text string, k int) ([]int64, error)
}

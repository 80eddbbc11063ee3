package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AkshatShukla22/task-management/domain/models"
)

// TaskFilter optional criteria for listing tasks.
// Zero values / nil pointers mean filter not applied. Now anchors the overdue
// comparison so the query and its caller agree on the request's wall-clock.
type TaskFilter struct {
	OwnerID  *uuid.UUID
	Status   models.TaskStatus
	Priority models.TaskPriority
	Overdue  *bool
	Now      time.Time
	Offset   int
	Limit    int
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error

	// GetOwned resolves id scoped to ownerID; a foreign-owned task behaves
	// exactly like a missing one.
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*models.Task, error)

	// List returns one page ordered by deadline ASC, created_at DESC,
	// plus the total matching count.
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, int64, error)

	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error

	// BulkUpdateStatus verifies that every id resolves to a task owned by
	// ownerID and mutates all of them in one transaction; on any ownership
	// miss nothing is modified. Returns the number of rows changed.
	BulkUpdateStatus(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, status models.TaskStatus, now time.Time) (int64, error)

	// Statistics queries, all scoped to ownerID.
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.TaskStatus]int64, error)
	CountOverdue(ctx context.Context, ownerID uuid.UUID, now time.Time) (int64, error)
	CountDueBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (int64, error)
	CountCreatedSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int64, error)
	CountCompletedSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int64, error)
}

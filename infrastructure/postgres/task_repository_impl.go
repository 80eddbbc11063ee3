package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AkshatShukla22/task-management/domain/apperrors"
	"github.com/AkshatShukla22/task-management/domain/models"
	"github.com/AkshatShukla22/task-management/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Task{})

	if filter.OwnerID != nil {
		q = q.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.Overdue != nil {
		if *filter.Overdue {
			q = q.Where("deadline < ? AND status <> ?", filter.Now, models.TaskStatusCompleted)
		} else {
			q = q.Where("deadline >= ? OR status = ?", filter.Now, models.TaskStatusCompleted)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []*models.Task
	err := q.Order("deadline ASC, created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update writes every column, so clearing completed_at back to NULL lands in
// the same statement as the status change.
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) BulkUpdateStatus(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, status models.TaskStatus, now time.Time) (int64, error) {
	var modified int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		err := tx.Model(&models.Task{}).
			Where("id IN ? AND user_id = ?", ids, ownerID).
			Count(&owned).Error
		if err != nil {
			return err
		}

		// All-or-nothing: one unresolved or foreign id rejects the batch.
		if owned != int64(len(ids)) {
			return apperrors.ErrTaskNotFound
		}

		updates := map[string]interface{}{
			"status":     status,
			"updated_at": now,
		}
		if status == models.TaskStatusCompleted {
			// Keep an existing completion stamp, matching single-update semantics.
			updates["completed_at"] = gorm.Expr("COALESCE(completed_at, ?)", now)
		} else {
			updates["completed_at"] = nil
		}

		res := tx.Model(&models.Task{}).
			Where("id IN ? AND user_id = ?", ids, ownerID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}

		modified = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return modified, nil
}

func (r *TaskRepositoryImpl) CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.TaskStatus]int64, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}

	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *TaskRepositoryImpl) CountOverdue(ctx context.Context, ownerID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_id = ? AND deadline < ? AND status <> ?", ownerID, now, models.TaskStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountDueBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_id = ? AND deadline BETWEEN ? AND ? AND status <> ?", ownerID, from, to, models.TaskStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountCreatedSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_id = ? AND created_at >= ?", ownerID, since).
		Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountCompletedSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_id = ? AND status = ? AND completed_at >= ?", ownerID, models.TaskStatusCompleted, since).
		Count(&count).Error
	return count, err
}

package serviceimpl

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AkshatShukla22/task-management/domain/apperrors"
	"github.com/AkshatShukla22/task-management/domain/dto"
	"github.com/AkshatShukla22/task-management/domain/models"
	"github.com/AkshatShukla22/task-management/domain/repositories"
	"github.com/AkshatShukla22/task-management/domain/services"
	"github.com/AkshatShukla22/task-management/infrastructure/redis"
	"github.com/AkshatShukla22/task-management/pkg/logger"
)

const (
	dueSoonWindow        = 7 * 24 * time.Hour
	recentWindow         = 7 * 24 * time.Hour
	completionRateWindow = 30 * 24 * time.Hour
)

type TaskServiceImpl struct {
	taskRepo   repositories.TaskRepository
	userRepo   repositories.UserRepository
	statsCache *redis.StatsCache

	// injectable clock for tests
	now func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository, statsCache *redis.StatsCache) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:   taskRepo,
		userRepo:   userRepo,
		statsCache: statsCache,
		now:        time.Now,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		logger.WarnContext(ctx, "User not found for task creation", "user_id", ownerID)
		return nil, apperrors.ErrUserNotFound
	}

	now := s.now()
	if req.Deadline == nil || !req.Deadline.After(now) {
		return nil, apperrors.NewValidation("deadline", "deadline must be in the future")
	}

	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.TaskStatusPending
	}
	priority := models.TaskPriority(req.Priority)
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    *req.Deadline,
		Priority:    priority,
		Tags:        models.TagList(req.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	task.MarkStatus(status, now)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", ownerID, "error", err)
		return nil, err
	}

	s.invalidateStats(ctx, ownerID)
	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", ownerID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetOwned(ctx, ownerID, taskID)
	if err != nil {
		return nil, apperrors.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error) {
	return s.list(ctx, &ownerID, filter)
}

func (s *TaskServiceImpl) ListAllTasks(ctx context.Context, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error) {
	return s.list(ctx, nil, filter)
}

func (s *TaskServiceImpl) list(ctx context.Context, ownerID *uuid.UUID, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error) {
	filter.Normalize()

	tasks, total, err := s.taskRepo.List(ctx, repositories.TaskFilter{
		OwnerID:  ownerID,
		Status:   models.TaskStatus(filter.Status),
		Priority: models.TaskPriority(filter.Priority),
		Overdue:  filter.Overdue,
		Now:      s.now(),
		Offset:   filter.Offset(),
		Limit:    filter.Limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, 0, err
	}

	return tasks, total, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetOwned(ctx, ownerID, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID, "user_id", ownerID)
		return nil, apperrors.ErrTaskNotFound
	}

	now := s.now()

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Priority != "" {
		task.Priority = models.TaskPriority(req.Priority)
	}
	if req.Tags != nil {
		task.Tags = models.TagList(req.Tags)
	}
	if req.Deadline != nil {
		// Future-only is re-checked against the moment of this request; a
		// deadline that has since passed on an untouched task stays valid.
		if !req.Deadline.After(now) {
			return nil, apperrors.NewValidation("deadline", "deadline must be in the future")
		}
		task.Deadline = *req.Deadline
	}
	if req.Status != "" {
		task.MarkStatus(models.TaskStatus(req.Status), now)
	}

	task.UpdatedAt = now

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	s.invalidateStats(ctx, ownerID)
	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "status", task.Status)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	task, err := s.taskRepo.GetOwned(ctx, ownerID, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID, "user_id", ownerID)
		return apperrors.ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	s.invalidateStats(ctx, ownerID)
	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", ownerID)
	return nil
}

func (s *TaskServiceImpl) BulkUpdateStatus(ctx context.Context, ownerID uuid.UUID, req *dto.BulkStatusRequest) (int64, error) {
	ids := dedupe(req.TaskIDs)

	modified, err := s.taskRepo.BulkUpdateStatus(ctx, ownerID, ids, models.TaskStatus(req.Status), s.now())
	if err != nil {
		logger.WarnContext(ctx, "Bulk status update rejected", "user_id", ownerID, "count", len(ids), "error", err)
		return 0, err
	}

	s.invalidateStats(ctx, ownerID)
	logger.InfoContext(ctx, "Bulk status update applied", "user_id", ownerID, "modified", modified, "status", req.Status)

	return modified, nil
}

func (s *TaskServiceImpl) GetStats(ctx context.Context, ownerID uuid.UUID) (*dto.TaskStatsResponse, error) {
	if cached, ok := s.statsCache.Get(ctx, ownerID); ok {
		return cached, nil
	}

	now := s.now()

	byStatus, err := s.taskRepo.CountByStatus(ctx, ownerID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count tasks by status", "user_id", ownerID, "error", err)
		return nil, err
	}

	overdue, err := s.taskRepo.CountOverdue(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}

	dueThisWeek, err := s.taskRepo.CountDueBetween(ctx, ownerID, now, now.Add(dueSoonWindow))
	if err != nil {
		return nil, err
	}

	createdLast30d, err := s.taskRepo.CountCreatedSince(ctx, ownerID, now.Add(-completionRateWindow))
	if err != nil {
		return nil, err
	}
	completedLast30d, err := s.taskRepo.CountCompletedSince(ctx, ownerID, now.Add(-completionRateWindow))
	if err != nil {
		return nil, err
	}

	// Distinct 7-day window, reported separately from the 30-day rate.
	recentCompletions, err := s.taskRepo.CountCompletedSince(ctx, ownerID, now.Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	stats := &dto.TaskStatsResponse{
		Pending:           byStatus[models.TaskStatusPending],
		InProgress:        byStatus[models.TaskStatusInProgress],
		Completed:         byStatus[models.TaskStatusCompleted],
		Overdue:           overdue,
		DueThisWeek:       dueThisWeek,
		CompletionRate:    completionRate(completedLast30d, createdLast30d),
		RecentCompletions: recentCompletions,
	}
	stats.Total = stats.Pending + stats.InProgress + stats.Completed

	s.statsCache.Set(ctx, ownerID, stats)

	return stats, nil
}

// completionRate percentage of tasks created in the window that were also
// completed in it; 0 when nothing was created (explicit policy, not an error).
func completionRate(completed, created int64) int {
	if created == 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(created)))
}

func (s *TaskServiceImpl) invalidateStats(ctx context.Context, ownerID uuid.UUID) {
	s.statsCache.Invalidate(ctx, ownerID)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

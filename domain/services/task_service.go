package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/AkshatShukla22/task-management/domain/dto"
	"github.com/AkshatShukla22/task-management/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error)
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
	BulkUpdateStatus(ctx context.Context, ownerID uuid.UUID, req *dto.BulkStatusRequest) (int64, error)
	GetStats(ctx context.Context, ownerID uuid.UUID) (*dto.TaskStatsResponse, error)

	// ListAllTasks is the administrative variant of ListTasks, unscoped by owner.
	ListAllTasks(ctx context.Context, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error)
}

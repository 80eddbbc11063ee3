package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/AkshatShukla22/task-management/domain/models"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"required,min=1,max=1000"`
	Deadline    *time.Time `json:"deadline" validate:"required"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Tags        []string   `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}

// UpdateTaskRequest any subset of mutable fields; nil/empty means leave unchanged
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"omitempty,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,min=1,max=1000"`
	Deadline    *time.Time `json:"deadline" validate:"omitempty"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Tags        []string   `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}

type BulkStatusRequest struct {
	TaskIDs []uuid.UUID `json:"taskIds" validate:"required,min=1,dive,required"`
	Status  string      `json:"status" validate:"required,oneof=pending in_progress completed"`
}

type BulkStatusResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type TaskFilterRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority string `query:"priority" validate:"omitempty,oneof=low medium high"`
	Overdue  *bool  `query:"overdue"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Normalize applies pagination defaults. Out-of-range values are rejected by
// validation before this runs; zero means the parameter was not supplied.
func (f *TaskFilterRequest) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
}

// Offset 1-indexed page number to row offset
func (f *TaskFilterRequest) Offset() int {
	return (f.Page - 1) * f.Limit
}

type TaskResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	Deadline    time.Time           `json:"deadline"`
	Tags        []string            `json:"tags"`
	CompletedAt *time.Time          `json:"completedAt"`
	UserID      uuid.UUID           `json:"userId"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type TaskStatsResponse struct {
	Total             int64 `json:"total"`
	Pending           int64 `json:"pending"`
	InProgress        int64 `json:"inProgress"`
	Completed         int64 `json:"completed"`
	Overdue           int64 `json:"overdue"`
	DueThisWeek       int64 `json:"dueThisWeek"`
	CompletionRate    int   `json:"completionRate"`    // 30-day window, percent
	RecentCompletions int64 `json:"recentCompletions"` // completed within last 7 days
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TaskStatus lifecycle state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether s is a known status value
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority priority level of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid reports whether p is a known priority value
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// TagList ordered list of task tags, stored as jsonb
type TagList []string

// Scan implements sql.Scanner for TagList
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, t)
}

// Value implements driver.Valuer for TagList
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

type Task struct {
	ID          uuid.UUID    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index;index:idx_tasks_user_status,priority:1"`
	Title       string       `gorm:"size:200;not null"`
	Description string       `gorm:"size:1000;not null"`
	Status      TaskStatus   `gorm:"size:20;default:'pending';index:idx_tasks_user_status,priority:2"`
	Priority    TaskPriority `gorm:"size:10;default:'medium'"`
	Deadline    time.Time    `gorm:"not null;index"`
	Tags        TagList      `gorm:"type:jsonb;default:'[]'"`

	// Non-nil exactly while Status == completed
	CompletedAt *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}

func (Task) TableName() string {
	return "tasks"
}

// IsCompleted reports whether the task has been completed
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// IsOverdue reports whether the deadline has passed while the task is still open
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Deadline.Before(now) && t.Status != TaskStatusCompleted
}

// MarkStatus moves the task to status and keeps CompletedAt consistent:
// stamped on entering completed (when unset), cleared on leaving it.
func (t *Task) MarkStatus(status TaskStatus, now time.Time) {
	t.Status = status
	if status == TaskStatusCompleted {
		if t.CompletedAt == nil {
			completedAt := now
			t.CompletedAt = &completedAt
		}
	} else {
		t.CompletedAt = nil
	}
}

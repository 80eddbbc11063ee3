package models

import (
	"testing"
	"time"
)

func TestTaskStatusIsValid(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   bool
	}{
		{TaskStatusPending, true},
		{TaskStatusInProgress, true},
		{TaskStatusCompleted, true},
		{TaskStatus("done"), false},
		{TaskStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.want {
			t.Errorf("TaskStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestTaskPriorityIsValid(t *testing.T) {
	tests := []struct {
		priority TaskPriority
		want     bool
	}{
		{TaskPriorityLow, true},
		{TaskPriorityMedium, true},
		{TaskPriorityHigh, true},
		{TaskPriority("urgent"), false},
		{TaskPriority(""), false},
	}

	for _, tt := range tests {
		if got := tt.priority.IsValid(); got != tt.want {
			t.Errorf("TaskPriority(%q).IsValid() = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		status   TaskStatus
		want     bool
	}{
		{"past deadline, pending", now.Add(-time.Hour), TaskStatusPending, true},
		{"past deadline, in progress", now.Add(-time.Hour), TaskStatusInProgress, true},
		{"past deadline, completed", now.Add(-time.Hour), TaskStatusCompleted, false},
		{"future deadline, pending", now.Add(time.Hour), TaskStatusPending, false},
		{"deadline exactly now", now, TaskStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Deadline: tt.deadline, Status: tt.status}
			if got := task.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarkStatusStampsCompletion(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	task := &Task{Status: TaskStatusPending}
	task.MarkStatus(TaskStatusCompleted, now)

	if task.Status != TaskStatusCompleted {
		t.Fatalf("Status = %q, want %q", task.Status, TaskStatusCompleted)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Fatalf("CompletedAt = %v, want %v", task.CompletedAt, now)
	}
}

func TestMarkStatusPreservesExistingStamp(t *testing.T) {
	first := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	later := first.Add(2 * time.Hour)

	task := &Task{Status: TaskStatusPending}
	task.MarkStatus(TaskStatusCompleted, first)
	task.MarkStatus(TaskStatusCompleted, later)

	if task.CompletedAt == nil || !task.CompletedAt.Equal(first) {
		t.Fatalf("CompletedAt = %v, want original stamp %v", task.CompletedAt, first)
	}
}

func TestMarkStatusClearsStampOnReopen(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	task := &Task{Status: TaskStatusPending}
	task.MarkStatus(TaskStatusCompleted, now)
	task.MarkStatus(TaskStatusInProgress, now.Add(time.Hour))

	if task.Status != TaskStatusInProgress {
		t.Fatalf("Status = %q, want %q", task.Status, TaskStatusInProgress)
	}
	if task.CompletedAt != nil {
		t.Fatalf("CompletedAt = %v, want nil after leaving completed", task.CompletedAt)
	}
}

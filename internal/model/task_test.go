package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		Title:     "Read a chapter of a book",
		Priority:  PriorityHigh,
		DueDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:    StatusPending,
		CreatedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRequiresTitle(t *testing.T) {
	task := Task{
		Title:    "   ",
		Priority: PriorityLow,
		DueDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:   StatusPending,
	}
	err := task.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "model: task title is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskValidateInvalidEnums(t *testing.T) {
	task := Task{
		Title:    "Bad priority",
		Priority: Priority("Urgent"),
		DueDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:   StatusPending,
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}

	task.Priority = PriorityMedium
	task.Status = Status("Archived")
	err = task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got: %v", err)
	}
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC)

	task := Task{
		Title:    "Submit report",
		Priority: PriorityHigh,
		DueDate:  time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		Status:   StatusPending,
	}
	if !task.Overdue(now) {
		t.Fatal("expected pending task with past due date to be overdue")
	}

	task.DueDate = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	if task.Overdue(now) {
		t.Fatal("task due today should not be overdue")
	}

	task.DueDate = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	task.Status = StatusCompleted
	if task.Overdue(now) {
		t.Fatal("completed task should never be overdue")
	}
}

package storage

import "time"

type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	DueDate     time.Time
	Status      string
	CreatedAt   time.Time
}

type TaskListFilter struct {
	Status string
	Limit  int
	Offset int
}

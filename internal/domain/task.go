package domain

import (
	"context"
	"time"
)

// Task is a single to-do item owned by exactly one user. OwnerID is set
// at creation and never reassigned.
type Task struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"userId"`
	Task        string    `json:"task"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskRepository is the port for task persistence. GetTask returns
// (nil, nil) when the task does not exist.
type TaskRepository interface {
	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasksByOwner(ctx context.Context, ownerID int64) ([]Task, error)
	UpdateTask(ctx context.Context, id int64, task string, isCompleted bool) error
	DeleteTask(ctx context.Context, id int64) error
}

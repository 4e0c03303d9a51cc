package app

import (
	"context"
	"errors"
	"time"

	"taskhub/internal/domain"
)

var (
	// ErrTaskNotFound indicates that no task with the given id exists.
	ErrTaskNotFound = errors.New("task not found")
	// ErrNotOwner indicates that the requester does not own the task.
	ErrNotOwner = errors.New("task belongs to another user")
	// ErrTaskExists indicates that the caller-assigned task id is taken.
	ErrTaskExists = errors.New("task id already exists")
)

// TaskService encapsulates task CRUD, scoped to the authenticated owner.
type TaskService struct {
	repo domain.TaskRepository
}

// NewTaskService creates a TaskService backed by the given repository.
func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create inserts a new task owned by ownerID. Ids are caller-assigned;
// a duplicate id is rejected, never overwritten.
func (s *TaskService) Create(ctx context.Context, ownerID, id int64, task string, isCompleted bool) error {
	err := s.repo.CreateTask(ctx, &domain.Task{
		ID:          id,
		OwnerID:     ownerID,
		Task:        task,
		IsCompleted: isCompleted,
		CreatedAt:   time.Now(),
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return ErrTaskExists
	}
	return err
}

// ListOwned returns all tasks owned by ownerID.
func (s *TaskService) ListOwned(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.repo.ListTasksByOwner(ctx, ownerID)
}

// Update rewrites the text and completion flag of a task. The requester
// must own the task; anyone else gets ErrNotOwner regardless of role.
func (s *TaskService) Update(ctx context.Context, requesterID, taskID int64, task string, isCompleted bool) error {
	if err := s.requireOwner(ctx, requesterID, taskID); err != nil {
		return err
	}
	return s.repo.UpdateTask(ctx, taskID, task, isCompleted)
}

// Delete removes a task owned by the requester.
func (s *TaskService) Delete(ctx context.Context, requesterID, taskID int64) error {
	if err := s.requireOwner(ctx, requesterID, taskID); err != nil {
		return err
	}
	return s.repo.DeleteTask(ctx, taskID)
}

func (s *TaskService) requireOwner(ctx context.Context, requesterID, taskID int64) error {
	t, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}
	if t.OwnerID != requesterID {
		return ErrNotOwner
	}
	return nil
}

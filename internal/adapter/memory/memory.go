// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"taskhub/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu    sync.Mutex
	users map[int64]*domain.User
	tasks map[int64]*domain.Task
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		users: make(map[int64]*domain.User),
		tasks: make(map[int64]*domain.Task),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.TaskRepository = (*DB)(nil)

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u, ok := db.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// Create inserts a user, rejecting duplicate ids and usernames the way
// the postgres unique constraints do.
func (db *DB) Create(ctx context.Context, u *domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.users[u.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, existing := range db.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	db.users[u.ID] = &cp
	return nil
}

// --- TaskRepository ---

// CreateTask inserts a task, rejecting duplicate ids.
func (db *DB) CreateTask(ctx context.Context, t *domain.Task) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.tasks[t.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *t
	db.tasks[t.ID] = &cp
	return nil
}

// GetTask retrieves a task by id.
func (db *DB) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, ok := db.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

// ListTasksByOwner returns all tasks owned by ownerID, ordered by id.
func (db *DB) ListTasksByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := []domain.Task{}
	for _, t := range db.tasks {
		if t.OwnerID == ownerID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateTask rewrites the text and completion flag of a task.
func (db *DB) UpdateTask(ctx context.Context, id int64, task string, isCompleted bool) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if t, ok := db.tasks[id]; ok {
		t.Task = task
		t.IsCompleted = isCompleted
	}
	return nil
}

// DeleteTask removes a task by id.
func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.tasks, id)
	return nil
}

// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicate indicates that an insert violated a uniqueness constraint
// in the store (duplicate username or duplicate task id).
var ErrDuplicate = errors.New("duplicate key")

// User represents a registered account. IDs are assigned by the caller
// at registration time, not generated by the store.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Identity is the {userId, role} pair a verified token asserts belongs
// to the caller of a protected operation.
type Identity struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no matching row exists.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, u *User) error
}

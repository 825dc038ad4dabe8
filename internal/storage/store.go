// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/settleup/settleup/internal/models"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for split and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the API layer.
type Store interface {
	// CreateSplit persists a new split with its contributors and
	// transfers. ID, CreatedAt and Title are populated by the store when
	// unset.
	CreateSplit(ctx context.Context, split *models.Split) error

	// GetSplit retrieves a split by ID, including contributors and
	// transfers in their stored order.
	GetSplit(ctx context.Context, splitID string) (*models.Split, error)

	// UpdateSplit replaces an existing split's fields, contributors and
	// transfers. Returns ErrNotFound if the split does not exist.
	UpdateSplit(ctx context.Context, split *models.Split) error

	// DeleteSplit removes a split and its child rows.
	DeleteSplit(ctx context.Context, splitID string) error

	// ListSplits retrieves all splits created by the given user, newest
	// first.
	ListSplits(ctx context.Context, userID string) ([]*models.Split, error)

	// CreateUser inserts a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}

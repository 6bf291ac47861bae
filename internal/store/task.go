package store

import (
	"context"

	"github.com/rkarlsb/taskline/internal/domain"
)

// TaskStore defines the interface for task persistence. Every operation is
// scoped to an owner username; a task owned by someone else behaves exactly
// like a task that does not exist.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner returns all tasks belonging to the given owner, sorted by
	// priority descending, ties broken by due date ascending. Returns an
	// empty slice when the owner has no tasks.
	ListByOwner(ctx context.Context, owner string) ([]*domain.Task, error)

	// Update replaces the title, priority, and due date of the task with
	// the given ID, provided it is owned by owner. Owner and Completed are
	// never modified. Returns ErrTaskNotFound if no such task is owned by
	// owner.
	Update(ctx context.Context, owner string, task *domain.Task) (*domain.Task, error)

	// Delete removes the task with the given ID if it is owned by owner.
	// Deleting a task that does not exist, or that belongs to another user,
	// is a no-op; the operation is idempotent and never reports absence.
	Delete(ctx context.Context, owner string, id int64) error
}

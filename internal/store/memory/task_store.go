package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rkarlsb/taskline/internal/domain"
	"github.com/rkarlsb/taskline/internal/store"
)

// TaskStore is an in-memory implementation of store.TaskStore. Listing is a
// full scan and sort on every call; at personal-tracker scale an index
// would be overkill.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []*domain.Task
	ids   *idGenerator
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		ids: newIDGenerator(),
	}
}

// Create saves a new task and assigns its ID.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.ids.Next()
	stored := *task
	s.tasks = append(s.tasks, &stored)
	return nil
}

// ListByOwner returns the owner's tasks sorted by priority descending,
// ties broken by due date ascending.
func (s *TaskStore) ListByOwner(ctx context.Context, owner string) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.Owner == owner {
			t := *task
			result = append(result, &t)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Priority != result[j].Priority {
			return result[i].Priority > result[j].Priority
		}
		return dueBefore(result[i].DueDate, result[j].DueDate)
	})

	return result, nil
}

// dueBefore orders due dates chronologically. Timestamps with different UTC
// offsets do not compare correctly as strings, so both are parsed; if either
// is not valid RFC 3339, string order is the fallback.
func dueBefore(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ta.Before(tb)
}

// Update replaces the editable fields of the owner's task with the given
// ID. Existence and ownership are checked together, so a task owned by
// someone else yields the same store.ErrTaskNotFound as a nonexistent ID.
func (s *TaskStore) Update(ctx context.Context, owner string, task *domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tasks {
		if existing.ID != task.ID || existing.Owner != owner {
			continue
		}
		if err := existing.UpdateDetails(task.Title, task.Priority, task.DueDate); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		updated := *existing
		return &updated, nil
	}

	return nil, store.ErrTaskNotFound
}

// Delete removes the owner's task with the given ID. A miss, including a
// task owned by another user, is a silent no-op.
func (s *TaskStore) Delete(ctx context.Context, owner string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.ID == id && existing.Owner == owner {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

package domain

import "errors"

// Priority bounds accepted at the API boundary. Values outside this range
// would render in none of the client's display buckets, so they are
// rejected instead of silently stored.
const (
	MinPriority = 1
	MaxPriority = 3
)

// Task validation errors
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrEmptyDueDate    = errors.New("due date cannot be empty")
	ErrEmptyOwner      = errors.New("task owner cannot be empty")
	ErrInvalidPriority = errors.New("priority must be between 1 and 3")
)

// Task represents a single to-do item belonging to one user. Ownership is
// by username value; every read and write is scoped to the owner, so a task
// is invisible to any other user.
type Task struct {
	ID        int64  `json:"id"`
	Owner     string `json:"owner"`
	Title     string `json:"title"`
	Priority  int    `json:"priority"`
	DueDate   string `json:"dueDate"`
	Completed bool   `json:"completed"`
}

// NewTask creates a new Task owned by the given username. The ID is
// assigned by the store on creation; Completed always starts false and no
// exposed operation ever sets it.
func NewTask(owner, title string, priority int, dueDate string) (*Task, error) {
	task := &Task{
		Owner:    owner,
		Title:    title,
		Priority: priority,
		DueDate:  dueDate,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Owner == "" {
		return ErrEmptyOwner
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	if t.DueDate == "" {
		return ErrEmptyDueDate
	}

	if t.Priority < MinPriority || t.Priority > MaxPriority {
		return ErrInvalidPriority
	}

	return nil
}

// UpdateDetails replaces the editable fields of the task. Owner and
// Completed are untouched. Returns a validation error without modifying the
// task if the new values are invalid.
func (t *Task) UpdateDetails(title string, priority int, dueDate string) error {
	updated := *t
	updated.Title = title
	updated.Priority = priority
	updated.DueDate = dueDate

	if err := updated.Validate(); err != nil {
		return err
	}

	*t = updated
	return nil
}

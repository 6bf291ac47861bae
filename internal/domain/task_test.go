package domain_test

import (
	"testing"

	"github.com/rkarlsb/taskline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		owner    string
		title    string
		priority int
		dueDate  string
		wantErr  error
	}{
		{
			name:     "valid task",
			owner:    "alice",
			title:    "buy milk",
			priority: 2,
			dueDate:  "2025-01-01T10:00:00Z",
			wantErr:  nil,
		},
		{
			name:     "empty title",
			owner:    "alice",
			title:    "",
			priority: 2,
			dueDate:  "2025-01-01T10:00:00Z",
			wantErr:  domain.ErrEmptyTitle,
		},
		{
			name:     "empty due date",
			owner:    "alice",
			title:    "buy milk",
			priority: 2,
			dueDate:  "",
			wantErr:  domain.ErrEmptyDueDate,
		},
		{
			name:     "empty owner",
			owner:    "",
			title:    "buy milk",
			priority: 2,
			dueDate:  "2025-01-01T10:00:00Z",
			wantErr:  domain.ErrEmptyOwner,
		},
		{
			name:     "priority below range",
			owner:    "alice",
			title:    "buy milk",
			priority: 0,
			dueDate:  "2025-01-01T10:00:00Z",
			wantErr:  domain.ErrInvalidPriority,
		},
		{
			name:     "priority above range",
			owner:    "alice",
			title:    "buy milk",
			priority: 4,
			dueDate:  "2025-01-01T10:00:00Z",
			wantErr:  domain.ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := domain.NewTask(tt.owner, tt.title, tt.priority, tt.dueDate)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.owner, task.Owner)
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, tt.priority, task.Priority)
			assert.Equal(t, tt.dueDate, task.DueDate)
			assert.False(t, task.Completed)
		})
	}
}

func TestTaskUpdateDetails(t *testing.T) {
	t.Parallel()

	t.Run("replaces editable fields only", func(t *testing.T) {
		task, err := domain.NewTask("alice", "buy milk", 2, "2025-01-01T10:00:00Z")
		require.NoError(t, err)

		err = task.UpdateDetails("buy bread", 3, "2025-02-01T10:00:00Z")
		require.NoError(t, err)

		assert.Equal(t, "buy bread", task.Title)
		assert.Equal(t, 3, task.Priority)
		assert.Equal(t, "2025-02-01T10:00:00Z", task.DueDate)
		assert.Equal(t, "alice", task.Owner)
		assert.False(t, task.Completed)
	})

	t.Run("invalid update leaves task unchanged", func(t *testing.T) {
		task, err := domain.NewTask("alice", "buy milk", 2, "2025-01-01T10:00:00Z")
		require.NoError(t, err)

		err = task.UpdateDetails("", 3, "2025-02-01T10:00:00Z")
		assert.ErrorIs(t, err, domain.ErrEmptyTitle)

		assert.Equal(t, "buy milk", task.Title)
		assert.Equal(t, 2, task.Priority)
		assert.Equal(t, "2025-01-01T10:00:00Z", task.DueDate)
	})
}

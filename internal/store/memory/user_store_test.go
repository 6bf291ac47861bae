package memory_test

import (
	"context"
	"testing"

	"github.com/rkarlsb/taskline/internal/domain"
	"github.com/rkarlsb/taskline/internal/store"
	"github.com/rkarlsb/taskline/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, "pw1")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
	return user
}

func TestUserStore_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("assigns unique creation-ordered IDs", func(t *testing.T) {
		s := memory.NewUserStore()

		alice := newStoredUser(t, "alice")
		bob := newStoredUser(t, "bob")

		require.NoError(t, s.Create(ctx, alice))
		require.NoError(t, s.Create(ctx, bob))

		assert.NotZero(t, alice.ID)
		assert.Greater(t, bob.ID, alice.ID)
	})

	t.Run("duplicate username leaves first user unchanged", func(t *testing.T) {
		s := memory.NewUserStore()

		first := newStoredUser(t, "alice")
		require.NoError(t, s.Create(ctx, first))

		second := newStoredUser(t, "alice")
		second.HashedPassword = "$2a$10$differenthashvalue000000"
		err := s.Create(ctx, second)
		assert.ErrorIs(t, err, store.ErrUsernameExists)
		assert.True(t, store.IsDuplicateError(err))

		stored, err := s.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, first.ID, stored.ID)
		assert.Equal(t, first.HashedPassword, stored.HashedPassword)
	})

	t.Run("username match is case-sensitive", func(t *testing.T) {
		s := memory.NewUserStore()

		require.NoError(t, s.Create(ctx, newStoredUser(t, "alice")))
		assert.NoError(t, s.Create(ctx, newStoredUser(t, "Alice")))
	})

	t.Run("rejects user without hashed password", func(t *testing.T) {
		s := memory.NewUserStore()

		user, err := domain.NewUser("alice", "pw1")
		require.NoError(t, err)
		assert.ErrorIs(t, s.Create(ctx, user), store.ErrInvalidEntity)
	})

	t.Run("does not retain the plaintext password", func(t *testing.T) {
		s := memory.NewUserStore()

		require.NoError(t, s.Create(ctx, newStoredUser(t, "alice")))

		stored, err := s.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, stored.Password)
	})
}

func TestUserStore_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.NewUserStore()

	alice := newStoredUser(t, "alice")
	require.NoError(t, s.Create(ctx, alice))

	t.Run("by username", func(t *testing.T) {
		stored, err := s.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, stored.ID)
	})

	t.Run("by ID", func(t *testing.T) {
		stored, err := s.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", stored.Username)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := s.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := s.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

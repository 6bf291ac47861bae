package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/rkarlsb/taskline/internal/domain"
	"github.com/rkarlsb/taskline/internal/store"
)

// UserStore is an in-memory implementation of store.UserStore keyed by
// username.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	ids   *idGenerator
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*domain.User),
		ids:   newIDGenerator(),
	}
}

// Create saves a new user and assigns its ID.
// Returns store.ErrUsernameExists if the username is already taken.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Map lookup is case-sensitive, matching the registration contract.
	if _, exists := s.users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	user.ID = s.ids.Next()
	stored := *user
	stored.Password = "" // never retain the plaintext
	s.users[user.Username] = &stored
	return nil
}

// GetByID retrieves a user by ID.
// Returns store.ErrUserNotFound if no user matches.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByUsername retrieves a user by username.
// Returns store.ErrUserNotFound if no user matches.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

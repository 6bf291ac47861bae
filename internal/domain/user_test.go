package domain_test

import (
	"testing"

	"github.com/rkarlsb/taskline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			username: "alice",
			password: "pw1",
			wantErr:  nil,
		},
		{
			name:     "empty username",
			username: "",
			password: "pw1",
			wantErr:  domain.ErrEmptyUsername,
		},
		{
			name:     "empty password",
			username: "alice",
			password: "",
			wantErr:  domain.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := domain.NewUser(tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.password, user.Password)
			assert.Empty(t, user.HashedPassword)
		})
	}
}

func TestUserValidate_HashedOnly(t *testing.T) {
	t.Parallel()

	// Users loaded from the store carry only the hash; that must validate.
	user := &domain.User{
		Username:       "alice",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())
}

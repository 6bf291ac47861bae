package domain

import "errors"

// Common validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account. Accounts are created once and never
// mutated or deleted; the only invariant is username uniqueness, which the
// store enforces.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string `json:"-"` // Never expose password hash in JSON
}

// NewUser creates a new User with the given username and password.
// The ID is assigned by the store on creation.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, password string) (*User, error) {
	user := &User{
		Username: username,
		Password: password, // Plaintext password - must be hashed before storage
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	// During registration we validate the provided plaintext password; for
	// users already in the store only the hash is present.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

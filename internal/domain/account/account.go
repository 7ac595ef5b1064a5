package account

import (
	"fmt"
	"regexp"
	"time"

	vo "helpdesk/internal/domain/account/valueobjects"
	"helpdesk/internal/shared/timeutil"
)

// Username constraints. Usernames are case-sensitive and unique.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)

// Account represents the account aggregate. Accounts are created through
// registration and never mutated afterwards; there is deliberately no update
// path for username or role.
type Account struct {
	id           string
	username     string
	passwordHash string
	role         vo.Role
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAccount creates a new account with the given credentials. The password
// must already be hashed; plaintext never reaches the aggregate.
func NewAccount(username string, passwordHash string, role vo.Role) (*Account, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := timeutil.NowUTC()
	return &Account{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAccount rebuilds an account from persistence. The stored role is
// taken as-is: a record whose role drifted outside the enum is kept rather
// than dropped, matching the tolerant load contract.
func ReconstructAccount(id, username, passwordHash string, role vo.Role, createdAt, updatedAt time.Time) (*Account, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	return &Account{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Role() vo.Role {
	return a.role
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// SetID sets the account ID (only for persistence layer use)
func (a *Account) SetID(id string) error {
	if len(a.id) > 0 {
		return fmt.Errorf("account ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("account ID cannot be empty")
	}
	a.id = id
	return nil
}

// ValidateUsername checks the username length and character set rules.
func ValidateUsername(username string) error {
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return fmt.Errorf("username must be between %d and %d characters", UsernameMinLength, UsernameMaxLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, dots and underscores")
	}
	return nil
}

package account

import "context"

// AccountRepository persists the account collection. Implementations reload
// the full backing file on every call; no state is cached across operations.
type AccountRepository interface {
	// Save assigns the next free ID to the account and persists it.
	Save(ctx context.Context, account *Account) error
	// FindByUsername returns the account with the exact (case-sensitive)
	// username, or nil when no such account exists.
	FindByUsername(ctx context.Context, username string) (*Account, error)
	// GetByID returns the account with the given ID, or nil when absent.
	GetByID(ctx context.Context, id string) (*Account, error)
}

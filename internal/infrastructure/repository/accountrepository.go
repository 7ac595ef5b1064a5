package repository

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/logger"
)

// FileAccountRepository stores accounts in a JSON-lines file. Every operation
// reloads the file in full; mutations rewrite it in full with an atomic
// replace. Nothing is cached between calls.
type FileAccountRepository struct {
	path   string
	logger logger.Interface
}

// NewFileAccountRepository creates a new FileAccountRepository
func NewFileAccountRepository(path string, logger logger.Interface) *FileAccountRepository {
	return &FileAccountRepository{
		path:   path,
		logger: logger,
	}
}

// Save assigns the next free ID to the account and appends it to the store.
func (r *FileAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	accounts, err := r.loadAll()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(accounts))
	for _, existing := range accounts {
		ids = append(ids, existing.ID())
	}
	if err := acc.SetID(nextID(ids)); err != nil {
		return fmt.Errorf("failed to assign account ID: %w", err)
	}

	accounts = append(accounts, acc)
	if err := r.saveAll(accounts); err != nil {
		return err
	}

	r.logger.Infow("account saved", "account_id", acc.ID(), "username", acc.Username())
	return nil
}

// FindByUsername returns the account with the exact username, or nil.
func (r *FileAccountRepository) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	accounts, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		if acc.Username() == username {
			return acc, nil
		}
	}
	return nil, nil
}

// GetByID returns the account with the given ID, or nil.
func (r *FileAccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	accounts, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		if acc.ID() == id {
			return acc, nil
		}
	}
	return nil, nil
}

// loadAll reads the backing file and maps every stored record to an
// aggregate. Records that fail reconstruction (missing id, username or
// password hash) are dropped, mirroring how malformed JSON lines are dropped
// a layer below.
func (r *FileAccountRepository) loadAll() ([]*account.Account, error) {
	records, err := storage.ReadAll[models.AccountModel](r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts := make([]*account.Account, 0, len(records))
	for _, record := range records {
		acc, err := record.ToAggregate()
		if err != nil {
			r.logger.Warnw("dropping unusable account record", "record_id", record.ID, "error", err)
			continue
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (r *FileAccountRepository) saveAll(accounts []*account.Account) error {
	records := make([]models.AccountModel, 0, len(accounts))
	for _, acc := range accounts {
		records = append(records, models.AccountToModel(acc))
	}
	if err := storage.WriteAll(r.path, records); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

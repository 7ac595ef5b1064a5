package usecases

import (
	"context"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/audit"
)

type mockAccountRepository struct {
	SaveFunc           func(ctx context.Context, acc *account.Account) error
	FindByUsernameFunc func(ctx context.Context, username string) (*account.Account, error)
	GetByIDFunc        func(ctx context.Context, id string) (*account.Account, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockAuditSink struct {
	RecordFunc func(ctx context.Context, event audit.Event) error
	Events     []audit.Event
}

func (m *mockAuditSink) Record(ctx context.Context, event audit.Event) error {
	m.Events = append(m.Events, event)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, event)
	}
	return nil
}

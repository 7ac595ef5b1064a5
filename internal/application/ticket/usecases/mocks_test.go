package usecases

import (
	"context"

	"helpdesk/internal/domain/audit"
	"helpdesk/internal/domain/ticket"
)

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc      func(ctx context.Context, ticketID string) error
	GetByIDFunc     func(ctx context.Context, ticketID string) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context) ([]*ticket.Ticket, error)
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, ownerID string) ([]*ticket.Ticket, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
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

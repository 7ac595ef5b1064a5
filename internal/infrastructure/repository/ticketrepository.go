package repository

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// FileTicketRepository stores tickets in a JSON-lines file, one record per
// line, rewritten in full on every mutation.
type FileTicketRepository struct {
	path   string
	logger logger.Interface
}

// NewFileTicketRepository creates a new FileTicketRepository
func NewFileTicketRepository(path string, logger logger.Interface) *FileTicketRepository {
	return &FileTicketRepository{
		path:   path,
		logger: logger,
	}
}

// Save assigns the next free ID to the ticket and appends it to the store.
func (r *FileTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	tickets, err := r.loadAll()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(tickets))
	for _, existing := range tickets {
		ids = append(ids, existing.ID())
	}
	if err := t.SetID(nextID(ids)); err != nil {
		return fmt.Errorf("failed to assign ticket ID: %w", err)
	}

	tickets = append(tickets, t)
	if err := r.saveAll(tickets); err != nil {
		return err
	}

	r.logger.Infow("ticket saved", "ticket_id", t.ID(), "owner_id", t.OwnerID())
	return nil
}

// Update replaces the stored record with the same ID.
func (r *FileTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tickets, err := r.loadAll()
	if err != nil {
		return err
	}

	found := false
	for i, existing := range tickets {
		if existing.ID() == t.ID() {
			tickets[i] = t
			found = true
			break
		}
	}
	if !found {
		return errors.NewNotFoundError("ticket not found")
	}

	return r.saveAll(tickets)
}

// Delete removes the stored record with the given ID.
func (r *FileTicketRepository) Delete(ctx context.Context, id string) error {
	tickets, err := r.loadAll()
	if err != nil {
		return err
	}

	remaining := make([]*ticket.Ticket, 0, len(tickets))
	found := false
	for _, existing := range tickets {
		if existing.ID() == id {
			found = true
			continue
		}
		remaining = append(remaining, existing)
	}
	if !found {
		return errors.NewNotFoundError("ticket not found")
	}

	return r.saveAll(remaining)
}

// GetByID returns the ticket with the given ID, or nil.
func (r *FileTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	tickets, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	for _, t := range tickets {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, nil
}

// List returns every ticket in file order.
func (r *FileTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	return r.loadAll()
}

// ListByOwner returns the owner's tickets in file order.
func (r *FileTicketRepository) ListByOwner(ctx context.Context, ownerID string) ([]*ticket.Ticket, error) {
	tickets, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	owned := make([]*ticket.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.OwnerID() == ownerID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func (r *FileTicketRepository) loadAll() ([]*ticket.Ticket, error) {
	records, err := storage.ReadAll[models.TicketModel](r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(records))
	for _, record := range records {
		t, err := record.ToAggregate()
		if err != nil {
			r.logger.Warnw("dropping unusable ticket record", "record_id", record.ID, "error", err)
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *FileTicketRepository) saveAll(tickets []*ticket.Ticket) error {
	records := make([]models.TicketModel, 0, len(tickets))
	for _, t := range tickets {
		records = append(records, models.TicketToModel(t))
	}
	if err := storage.WriteAll(r.path, records); err != nil {
		return fmt.Errorf("failed to save tickets: %w", err)
	}
	return nil
}

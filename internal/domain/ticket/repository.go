package ticket

import "context"

// TicketRepository persists the ticket collection. Every call performs a full
// load of the backing file; List and ListByOwner preserve file order.
type TicketRepository interface {
	// Save assigns the next free ID to the ticket and persists it.
	Save(ctx context.Context, ticket *Ticket) error
	// Update replaces the stored ticket with the same ID.
	Update(ctx context.Context, ticket *Ticket) error
	// Delete removes the ticket permanently. No tombstone is kept.
	Delete(ctx context.Context, ticketID string) error
	// GetByID returns the ticket with the given ID, or nil when absent.
	GetByID(ctx context.Context, ticketID string) (*Ticket, error)
	// List returns all tickets in insertion order.
	List(ctx context.Context) ([]*Ticket, error)
	// ListByOwner returns the tickets owned by the given account,
	// in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]*Ticket, error)
}

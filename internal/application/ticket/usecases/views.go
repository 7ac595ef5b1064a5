package usecases

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

// TicketView is the read-side projection handed to the presentation layer.
type TicketView struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Status      string
	Priority    string
	AssigneeID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newTicketView(t *ticket.Ticket) TicketView {
	return TicketView{
		ID:          t.ID(),
		OwnerID:     t.OwnerID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

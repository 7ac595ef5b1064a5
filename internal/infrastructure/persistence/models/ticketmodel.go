package models

import (
	"helpdesk/internal/domain/ticket"
	ticketvo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/timeutil"
)

// TicketModel is the stored form of a ticket record.
type TicketModel struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssigneeID  string `json:"assignee_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TicketToModel maps the aggregate to its stored form.
func TicketToModel(t *ticket.Ticket) TicketModel {
	return TicketModel{
		ID:          t.ID(),
		OwnerID:     t.OwnerID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   timeutil.FormatTimestamp(t.CreatedAt()),
		UpdatedAt:   timeutil.FormatTimestamp(t.UpdatedAt()),
	}
}

// ToAggregate rebuilds the ticket aggregate. Records without id, owner or
// title are rejected (the caller drops them); status and priority come back
// as stored, even when they drifted outside the enum.
func (m TicketModel) ToAggregate() (*ticket.Ticket, error) {
	createdAt, _ := timeutil.ParseTimestamp(m.CreatedAt)
	updatedAt, _ := timeutil.ParseTimestamp(m.UpdatedAt)

	return ticket.ReconstructTicket(
		m.ID,
		m.OwnerID,
		m.Title,
		m.Description,
		ticketvo.TicketStatus(m.Status),
		ticketvo.Priority(m.Priority),
		m.AssigneeID,
		createdAt,
		updatedAt,
	)
}

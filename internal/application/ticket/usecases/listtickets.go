package usecases

import (
	"context"

	"helpdesk/internal/domain/audit"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/auth"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsCommand struct {
	Requester audit.Actor
}

type ListTicketsResult struct {
	Tickets []TicketView
}

// ListTicketsUseCase returns the tickets visible to the requester: agents see
// the whole ledger, regular users only their own tickets.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	if len(cmd.Requester.ID) == 0 {
		return nil, errors.NewValidationError("requester is required")
	}

	var (
		tickets []*ticket.Ticket
		err     error
	)
	if auth.IsAgent(cmd.Requester.Role) {
		tickets, err = uc.ticketRepo.List(ctx)
	} else {
		tickets, err = uc.ticketRepo.ListByOwner(ctx, cmd.Requester.ID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "requester_id", cmd.Requester.ID, "error", err)
		return nil, err
	}

	views := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, newTicketView(t))
	}

	return &ListTicketsResult{Tickets: views}, nil
}

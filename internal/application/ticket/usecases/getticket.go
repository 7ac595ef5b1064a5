package usecases

import (
	"context"

	"helpdesk/internal/domain/audit"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketCommand struct {
	Requester audit.Actor
	TicketID  string
}

type GetTicketResult struct {
	Ticket TicketView
}

// GetTicketUseCase returns a single ticket after an ownership check. Existence
// is checked before access, so a user probing someone else's ticket learns
// that it exists but not its contents.
type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	if len(cmd.Requester.ID) == 0 {
		return nil, errors.NewValidationError("requester is required")
	}
	if len(cmd.TicketID) == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found", cmd.TicketID)
	}

	if !t.CanBeAccessedBy(cmd.Requester.ID, cmd.Requester.Role) {
		uc.logger.Warnw("ticket access denied", "ticket_id", cmd.TicketID, "requester_id", cmd.Requester.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return &GetTicketResult{Ticket: newTicketView(t)}, nil
}

package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/audit"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Requester audit.Actor
	TicketID  string
}

// DeleteTicketUseCase removes a closed ticket permanently. The role gate runs
// before the existence check, so non-agents cannot probe which IDs exist.
type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	auditSink  audit.Sink
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	auditSink audit.Sink,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		auditSink:  auditSink,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "requester_id", cmd.Requester.ID)

	if len(cmd.Requester.ID) == 0 {
		return errors.NewValidationError("requester is required")
	}
	if len(cmd.TicketID) == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if !auth.IsAgent(cmd.Requester.Role) {
		uc.logger.Warnw("ticket delete denied", "ticket_id", cmd.TicketID, "requester_id", cmd.Requester.ID)
		return errors.NewForbiddenError("only agents may delete tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}
	if t == nil {
		return errors.NewNotFoundError("ticket not found", cmd.TicketID)
	}

	if !t.Status().IsClosed() {
		return errors.NewPreconditionFailedError("only closed tickets can be deleted")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.recordAudit(ctx, cmd.Requester, t)
	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}

func (uc *DeleteTicketUseCase) recordAudit(ctx context.Context, actor audit.Actor, t *ticket.Ticket) {
	event := audit.NewEvent(
		actor,
		constants.ActionTicketDelete,
		constants.EntityTicket,
		t.ID(),
		constants.AuditStatusSuccess,
		fmt.Sprintf("Ticket %s deleted", t.ID()),
	)
	if err := uc.auditSink.Record(ctx, event); err != nil {
		uc.logger.Warnw("failed to record audit event", "action", event.Action, "error", err)
	}
}

package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/audit"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
	"helpdesk/internal/shared/utils/logutil"
)

// auditTitleLength caps how much of the title is echoed into audit details.
const auditTitleLength = 50

type CreateTicketCommand struct {
	Requester   audit.Actor
	Title       string
	Description string
	Priority    string
}

type CreateTicketResult struct {
	Ticket TicketView
}

// CreateTicketUseCase handles the business logic for opening a ticket
type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	auditSink  audit.Sink
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	auditSink audit.Sink,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		auditSink:  auditSink,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "owner_id", cmd.Requester.ID)

	if len(cmd.Requester.ID) == 0 {
		return nil, errors.NewValidationError("requester is required")
	}

	// Sanitize before validation so length checks see the stored form.
	title := utils.SanitizeText(cmd.Title, ticket.TitleMaxLength)
	description := utils.SanitizeText(cmd.Description, ticket.DescriptionMaxLength)

	newTicket, err := ticket.NewTicket(cmd.Requester.ID, title, description, vo.Priority(cmd.Priority))
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "owner_id", cmd.Requester.ID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.recordAudit(ctx, cmd.Requester, newTicket)
	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"owner_id", newTicket.OwnerID(),
		"title", logutil.TruncateForLog(newTicket.Title(), 64))

	return &CreateTicketResult{Ticket: newTicketView(newTicket)}, nil
}

func (uc *CreateTicketUseCase) recordAudit(ctx context.Context, actor audit.Actor, t *ticket.Ticket) {
	title := []rune(t.Title())
	if len(title) > auditTitleLength {
		title = title[:auditTitleLength]
	}

	event := audit.NewEvent(
		actor,
		constants.ActionTicketCreate,
		constants.EntityTicket,
		t.ID(),
		constants.AuditStatusSuccess,
		fmt.Sprintf("Title: %s, Priority: %s", string(title), t.Priority()),
	)
	if err := uc.auditSink.Record(ctx, event); err != nil {
		uc.logger.Warnw("failed to record audit event", "action", event.Action, "error", err)
	}
}

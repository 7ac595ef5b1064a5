package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/audit"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// UpdateTicketCommand carries the requested edits. A nil field means "leave it
// alone"; a non-nil field is an explicit edit request, including an empty
// assignee string, which unassigns the ticket.
type UpdateTicketCommand struct {
	Requester   audit.Actor
	TicketID    string
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	Assignee    *string
}

// FieldRejection names one edit that was refused and why. Other edits in the
// same command still go through.
type FieldRejection struct {
	Field  string
	Reason string
}

type UpdateTicketResult struct {
	Ticket     TicketView
	Applied    []string
	NoOps      []string
	Rejections []FieldRejection
}

// UpdateTicketUseCase applies edits field by field and saves once. Each edit
// is accepted, rejected, or a no-op independently; the ticket is persisted
// only when at least one edit actually changed a value, and audit events for
// the changed categories are recorded only after the save succeeds.
type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	auditSink  audit.Sink
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	auditSink audit.Sink,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		auditSink:  auditSink,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "requester_id", cmd.Requester.ID)

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
		uc.logger.Warnw("ticket edit denied", "ticket_id", cmd.TicketID, "requester_id", cmd.Requester.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	result := &UpdateTicketResult{}
	var pendingEvents []audit.Event

	if cmd.Title != nil {
		title := utils.SanitizeText(*cmd.Title, ticket.TitleMaxLength)
		changed, err := t.UpdateTitle(title)
		uc.classify(result, "title", changed, err)
	}

	if cmd.Description != nil {
		description := utils.SanitizeText(*cmd.Description, ticket.DescriptionMaxLength)
		changed, err := t.UpdateDescription(description)
		uc.classify(result, "description", changed, err)
	}

	if cmd.Status != nil {
		oldStatus := t.Status()
		changed, err := t.ChangeStatus(vo.TicketStatus(*cmd.Status))
		uc.classify(result, "status", changed, err)
		if changed {
			pendingEvents = append(pendingEvents, audit.NewEvent(
				cmd.Requester,
				constants.ActionTicketStatusChange,
				constants.EntityTicket,
				t.ID(),
				constants.AuditStatusSuccess,
				fmt.Sprintf("Ticket %s: %s -> %s", t.ID(), oldStatus, t.Status()),
			))
		}
	}

	if cmd.Priority != nil {
		oldPriority := t.Priority()
		changed, err := t.ChangePriority(vo.Priority(*cmd.Priority))
		uc.classify(result, "priority", changed, err)
		if changed {
			pendingEvents = append(pendingEvents, audit.NewEvent(
				cmd.Requester,
				constants.ActionTicketPriorityChange,
				constants.EntityTicket,
				t.ID(),
				constants.AuditStatusSuccess,
				fmt.Sprintf("Ticket %s: %s -> %s", t.ID(), oldPriority, t.Priority()),
			))
		}
	}

	if cmd.Assignee != nil {
		if !auth.IsAgent(cmd.Requester.Role) {
			result.Rejections = append(result.Rejections, FieldRejection{
				Field:  "assignee",
				Reason: "only agents may change the assignee",
			})
		} else {
			oldAssignee := t.AssigneeID()
			if t.Assign(*cmd.Assignee) {
				result.Applied = append(result.Applied, "assignee")
				pendingEvents = append(pendingEvents, audit.NewEvent(
					cmd.Requester,
					constants.ActionTicketAssigneeChange,
					constants.EntityTicket,
					t.ID(),
					constants.AuditStatusSuccess,
					fmt.Sprintf("Ticket %s: assignee %q -> %q", t.ID(), oldAssignee, t.AssigneeID()),
				))
			} else {
				result.NoOps = append(result.NoOps, "assignee")
			}
		}
	}

	if len(result.Applied) > 0 {
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to save ticket", "ticket_id", t.ID(), "error", err)
			return nil, err
		}
		for _, event := range pendingEvents {
			if err := uc.auditSink.Record(ctx, event); err != nil {
				uc.logger.Warnw("failed to record audit event", "action", event.Action, "error", err)
			}
		}
		uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "applied", result.Applied)
	}

	result.Ticket = newTicketView(t)
	return result, nil
}

func (uc *UpdateTicketUseCase) classify(result *UpdateTicketResult, field string, changed bool, err error) {
	switch {
	case err != nil:
		result.Rejections = append(result.Rejections, FieldRejection{Field: field, Reason: err.Error()})
	case changed:
		result.Applied = append(result.Applied, field)
	default:
		result.NoOps = append(result.NoOps, field)
	}
}

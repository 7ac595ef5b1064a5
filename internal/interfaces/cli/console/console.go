// Package console implements the interactive menu loop. It owns no business
// rules: every action is delegated to a use case and every outcome, success
// or rejection, is rendered as plain text.
package console

import (
	"context"
	"fmt"
	"io"

	accountuc "helpdesk/internal/application/account/usecases"
	ticketuc "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/audit"
	"helpdesk/internal/shared/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UseCases struct {
	Register *accountuc.RegisterUseCase
	Login    *accountuc.LoginUseCase
	Create   *ticketuc.CreateTicketUseCase
	List     *ticketuc.ListTicketsUseCase
	Get      *ticketuc.GetTicketUseCase
	Update   *ticketuc.UpdateTicketUseCase
	Delete   *ticketuc.DeleteTicketUseCase
}

// Console drives the two menus: the anonymous one (register, login, exit) and
// the session one (ticket operations, logout, exit). The session is held in
// memory only; there is no token or persistence across runs.
type Console struct {
	prompt    *prompter
	out       io.Writer
	usecases  UseCases
	auditSink audit.Sink
	logger    logger.Interface
	session   *audit.Actor
}

func New(in io.Reader, out io.Writer, usecases UseCases, auditSink audit.Sink, logger logger.Interface) *Console {
	return &Console{
		prompt:    newPrompter(in, out),
		out:       out,
		usecases:  usecases,
		auditSink: auditSink,
		logger:    logger,
	}
}

// Run loops until the operator picks exit or input is exhausted.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Helpdesk")

	for {
		var done bool
		var err error
		if c.session == nil {
			done, err = c.anonymousMenu(ctx)
		} else {
			done, err = c.sessionMenu(ctx)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if done {
			return nil
		}
	}
}

func (c *Console) anonymousMenu(ctx context.Context) (bool, error) {
	fmt.Fprintln(c.out, "\n1) Register\n2) Login\n3) Exit")
	choice, err := c.prompt.intInRange("Select", 1, 3)
	if err != nil {
		return false, err
	}

	switch choice {
	case 1:
		return false, c.register(ctx)
	case 2:
		return false, c.login(ctx)
	default:
		return true, nil
	}
}

func (c *Console) sessionMenu(ctx context.Context) (bool, error) {
	fmt.Fprintf(c.out, "\nLogged in as %s (%s)\n", c.session.Username, c.session.Role)
	fmt.Fprintln(c.out, "1) Create ticket\n2) List tickets\n3) View ticket\n4) Edit ticket\n5) Delete ticket\n6) Logout\n7) Exit")
	choice, err := c.prompt.intInRange("Select", 1, 7)
	if err != nil {
		return false, err
	}

	switch choice {
	case 1:
		return false, c.createTicket(ctx)
	case 2:
		return false, c.listTickets(ctx)
	case 3:
		return false, c.viewTicket(ctx)
	case 4:
		return false, c.editTicket(ctx)
	case 5:
		return false, c.deleteTicket(ctx)
	case 6:
		c.logout(ctx)
		return false, nil
	default:
		return true, nil
	}
}

func (c *Console) register(ctx context.Context) error {
	username, err := c.prompt.line("Username")
	if err != nil {
		return err
	}
	password, err := c.prompt.password("Password")
	if err != nil {
		return err
	}
	role, err := c.prompt.line("Role (user/agent)")
	if err != nil {
		return err
	}

	result, execErr := c.usecases.Register.Execute(ctx, accountuc.RegisterCommand{
		Username: username,
		Password: password,
		Role:     role,
	})
	if execErr != nil {
		c.printError(execErr)
		return nil
	}
	fmt.Fprintf(c.out, "Registered %s with id %s. You can log in now.\n", result.Username, result.AccountID)
	return nil
}

func (c *Console) login(ctx context.Context) error {
	username, err := c.prompt.line("Username")
	if err != nil {
		return err
	}
	password, err := c.prompt.password("Password")
	if err != nil {
		return err
	}

	result, execErr := c.usecases.Login.Execute(ctx, accountuc.LoginCommand{
		Username: username,
		Password: password,
	})
	if execErr != nil {
		c.printError(execErr)
		return nil
	}

	c.session = &audit.Actor{ID: result.AccountID, Username: result.Username, Role: result.Role}
	fmt.Fprintf(c.out, "Welcome, %s.\n", result.Username)
	return nil
}

func (c *Console) logout(ctx context.Context) {
	event := audit.NewEvent(
		*c.session,
		constants.ActionLogout,
		constants.EntityUser,
		c.session.ID,
		constants.AuditStatusSuccess,
		"",
	)
	if err := c.auditSink.Record(ctx, event); err != nil {
		c.logger.Warnw("failed to record audit event", "action", event.Action, "error", err)
	}

	fmt.Fprintf(c.out, "Goodbye, %s.\n", c.session.Username)
	c.session = nil
}

func (c *Console) createTicket(ctx context.Context) error {
	title, err := c.prompt.line("Title")
	if err != nil {
		return err
	}
	description, err := c.prompt.line("Description")
	if err != nil {
		return err
	}
	priority, err := c.prompt.line("Priority (low/medium/high)")
	if err != nil {
		return err
	}

	result, execErr := c.usecases.Create.Execute(ctx, ticketuc.CreateTicketCommand{
		Requester:   *c.session,
		Title:       title,
		Description: description,
		Priority:    priority,
	})
	if execErr != nil {
		c.printError(execErr)
		return nil
	}
	fmt.Fprintf(c.out, "Created ticket %s.\n", result.Ticket.ID)
	return nil
}

func (c *Console) listTickets(ctx context.Context) error {
	result, execErr := c.usecases.List.Execute(ctx, ticketuc.ListTicketsCommand{Requester: *c.session})
	if execErr != nil {
		c.printError(execErr)
		return nil
	}

	if len(result.Tickets) == 0 {
		fmt.Fprintln(c.out, "No tickets.")
		return nil
	}
	for _, t := range result.Tickets {
		fmt.Fprintf(c.out, "#%s [%s/%s] %s\n", t.ID, t.Status, t.Priority, t.Title)
	}
	return nil
}

func (c *Console) viewTicket(ctx context.Context) error {
	id, err := c.prompt.line("Ticket id")
	if err != nil {
		return err
	}

	result, execErr := c.usecases.Get.Execute(ctx, ticketuc.GetTicketCommand{Requester: *c.session, TicketID: id})
	if execErr != nil {
		c.printError(execErr)
		return nil
	}

	t := result.Ticket
	fmt.Fprintf(c.out, "Ticket #%s\n", t.ID)
	fmt.Fprintf(c.out, "  Title:       %s\n", t.Title)
	fmt.Fprintf(c.out, "  Description: %s\n", t.Description)
	fmt.Fprintf(c.out, "  Status:      %s\n", t.Status)
	fmt.Fprintf(c.out, "  Priority:    %s\n", t.Priority)
	fmt.Fprintf(c.out, "  Owner:       %s\n", t.OwnerID)
	if t.AssigneeID != "" {
		fmt.Fprintf(c.out, "  Assignee:    %s\n", t.AssigneeID)
	} else {
		fmt.Fprintln(c.out, "  Assignee:    (unassigned)")
	}
	return nil
}

func (c *Console) editTicket(ctx context.Context) error {
	id, err := c.prompt.line("Ticket id")
	if err != nil {
		return err
	}

	cmd := ticketuc.UpdateTicketCommand{Requester: *c.session, TicketID: id}

	if cmd.Title, err = c.prompt.optional("New title"); err != nil {
		return err
	}
	if cmd.Description, err = c.prompt.optional("New description"); err != nil {
		return err
	}
	if cmd.Status, err = c.prompt.optional("New status (open/in_progress/closed)"); err != nil {
		return err
	}
	if cmd.Priority, err = c.prompt.optional("New priority (low/medium/high)"); err != nil {
		return err
	}
	if auth.IsAgent(c.session.Role) {
		if cmd.Assignee, err = c.prompt.optional("Assignee id (empty string unassigns)"); err != nil {
			return err
		}
	}

	result, execErr := c.usecases.Update.Execute(ctx, cmd)
	if execErr != nil {
		c.printError(execErr)
		return nil
	}

	for _, field := range result.Applied {
		fmt.Fprintf(c.out, "Updated %s.\n", field)
	}
	for _, field := range result.NoOps {
		fmt.Fprintf(c.out, "%s unchanged.\n", field)
	}
	for _, rejection := range result.Rejections {
		fmt.Fprintf(c.out, "Rejected %s: %s\n", rejection.Field, rejection.Reason)
	}
	if len(result.Applied) == 0 && len(result.NoOps) == 0 && len(result.Rejections) == 0 {
		fmt.Fprintln(c.out, "Nothing to change.")
	}
	return nil
}

func (c *Console) deleteTicket(ctx context.Context) error {
	id, err := c.prompt.line("Ticket id")
	if err != nil {
		return err
	}

	if execErr := c.usecases.Delete.Execute(ctx, ticketuc.DeleteTicketCommand{Requester: *c.session, TicketID: id}); execErr != nil {
		c.printError(execErr)
		return nil
	}
	fmt.Fprintf(c.out, "Deleted ticket %s.\n", id)
	return nil
}

// printError renders recoverable errors as operator messages. Anything
// outside the application error taxonomy is unexpected and gets logged too.
func (c *Console) printError(err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Details != "" {
			fmt.Fprintf(c.out, "Error: %s (%s)\n", appErr.Message, appErr.Details)
		} else {
			fmt.Fprintf(c.out, "Error: %s\n", appErr.Message)
		}
		return
	}
	c.logger.Errorw("unexpected error", "error", err)
	fmt.Fprintf(c.out, "Error: %s\n", err)
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func repoWithTicket(tkt *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			if tkt != nil && tkt.ID() == ticketID {
				return tkt, nil
			}
			return nil, nil
		},
	}
}

func TestGetTicketUseCase_Execute_OwnerCanView(t *testing.T) {
	tkt := storedTicket(t, "3", "1", "Printer broken")
	uc := NewGetTicketUseCase(repoWithTicket(tkt), logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetTicketCommand{Requester: userActor(), TicketID: "3"})

	require.NoError(t, err)
	assert.Equal(t, "3", result.Ticket.ID)
	assert.Equal(t, "Printer broken", result.Ticket.Title)
}

func TestGetTicketUseCase_Execute_AgentCanViewAnyTicket(t *testing.T) {
	tkt := storedTicket(t, "3", "9", "Printer broken")
	uc := NewGetTicketUseCase(repoWithTicket(tkt), logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetTicketCommand{Requester: agentActor(), TicketID: "3"})

	require.NoError(t, err)
	assert.Equal(t, "3", result.Ticket.ID)
}

func TestGetTicketUseCase_Execute_StrangerForbidden(t *testing.T) {
	tkt := storedTicket(t, "3", "9", "Printer broken")
	uc := NewGetTicketUseCase(repoWithTicket(tkt), logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetTicketCommand{Requester: userActor(), TicketID: "3"})

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetTicketUseCase_Execute_NotFound(t *testing.T) {
	uc := NewGetTicketUseCase(repoWithTicket(nil), logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetTicketCommand{Requester: agentActor(), TicketID: "99"})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

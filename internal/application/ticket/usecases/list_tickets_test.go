package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func storedTicket(t *testing.T, id, ownerID, title string) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.NewTicket(ownerID, title, "Something is broken", vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, tkt.SetID(id))
	return tkt
}

func TestListTicketsUseCase_Execute_UserSeesOnlyOwnTickets(t *testing.T) {
	owned := []*ticket.Ticket{
		storedTicket(t, "1", "1", "First issue"),
		storedTicket(t, "3", "1", "Second issue"),
	}
	listByOwnerCalled := false
	mockRepo := &mockTicketRepository{
		ListByOwnerFunc: func(ctx context.Context, ownerID string) ([]*ticket.Ticket, error) {
			listByOwnerCalled = true
			assert.Equal(t, "1", ownerID)
			return owned, nil
		},
	}
	uc := NewListTicketsUseCase(mockRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListTicketsCommand{Requester: userActor()})

	require.NoError(t, err)
	assert.True(t, listByOwnerCalled)
	require.Len(t, result.Tickets, 2)
	assert.Equal(t, "First issue", result.Tickets[0].Title)
	assert.Equal(t, "Second issue", result.Tickets[1].Title)
}

func TestListTicketsUseCase_Execute_AgentSeesAllTickets(t *testing.T) {
	all := []*ticket.Ticket{
		storedTicket(t, "1", "1", "First issue"),
		storedTicket(t, "2", "5", "Other issue"),
	}
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return all, nil
		},
	}
	uc := NewListTicketsUseCase(mockRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListTicketsCommand{Requester: agentActor()})

	require.NoError(t, err)
	assert.Len(t, result.Tickets, 2)
}

func TestListTicketsUseCase_Execute_EmptyStore(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListTicketsCommand{Requester: userActor()})

	require.NoError(t, err)
	assert.Empty(t, result.Tickets)
}

func TestListTicketsUseCase_Execute_MissingRequester(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListTicketsCommand{})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatusIsValid(t *testing.T) {
	assert.True(t, StatusOpen.IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusClosed.IsValid())
	assert.False(t, TicketStatus("resolved").IsValid())
	assert.False(t, TicketStatus("").IsValid())
}

// Exhaustive transition grid: the only legal moves are open→in_progress,
// open→closed and in_progress→closed.
func TestTicketStatusTransitionGrid(t *testing.T) {
	statuses := []TicketStatus{StatusOpen, StatusInProgress, StatusClosed}
	legal := map[[2]TicketStatus]bool{
		{StatusOpen, StatusInProgress}:   true,
		{StatusOpen, StatusClosed}:       true,
		{StatusInProgress, StatusClosed}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			if from == to {
				continue
			}
			want := legal[[2]TicketStatus{from, to}]
			assert.Equal(t, want, from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestClosedIsTerminal(t *testing.T) {
	assert.True(t, StatusClosed.IsTerminal())
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.False(t, TicketStatus("bogus").IsTerminal())

	for _, to := range []TicketStatus{StatusOpen, StatusInProgress} {
		assert.False(t, StatusClosed.CanTransitionTo(to),
			"closed must never transition to %s", to)
	}
}

func TestNewTicketStatus(t *testing.T) {
	ts, err := NewTicketStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, ts)

	_, err = NewTicketStatus("reopened")
	assert.Error(t, err)
}

func TestTicketStatusPredicates(t *testing.T) {
	assert.True(t, StatusOpen.IsOpen())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusOpen.IsClosed())
}

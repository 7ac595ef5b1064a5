package audit

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNewEventWithActor(t *testing.T) {
	actor := Actor{ID: "1", Username: "alice", Role: "user"}

	event := NewEvent(actor, "LOGIN", "user", "1", "success", "login ok")

	assert.Equal(t, "1", event.UserID)
	assert.Equal(t, "alice", event.Username)
	assert.Equal(t, "user", event.Role)
	assert.Equal(t, "LOGIN", event.Action)
	assert.Equal(t, "user", event.Entity)
	assert.Equal(t, "1", event.EntityID)
	assert.Equal(t, "success", event.Status)
	assert.Equal(t, "login ok", event.Details)
	assert.True(t, strings.HasSuffix(event.Timestamp, "Z"))
}

func TestNewEventAnonymousFallback(t *testing.T) {
	event := NewEvent(Actor{}, "REGISTER", "user", "1", "success", "")

	assert.Equal(t, "anonymous", event.UserID)
	assert.Equal(t, "unknown", event.Username)
	assert.Equal(t, "unknown", event.Role)
}

func TestNewEventTruncatesDetails(t *testing.T) {
	long := strings.Repeat("d", 250)

	event := NewEvent(Anonymous(), "LOGIN_FAILED", "user", "N/A", "failed", long)

	assert.Len(t, event.Details, MaxDetailsLength)
	assert.Equal(t, strings.Repeat("d", MaxDetailsLength), event.Details)
}

func TestNewEventKeepsShortDetails(t *testing.T) {
	event := NewEvent(Anonymous(), "LOGIN_FAILED", "user", "N/A", "failed", "short")

	assert.Equal(t, "short", event.Details)
}

func TestNewEventTruncatesDetailsByCharacter(t *testing.T) {
	// 250 characters, 500 bytes; the cap counts characters and must never
	// split a multibyte sequence.
	long := strings.Repeat("é", 250)

	event := NewEvent(Anonymous(), "TICKET_CREATE", "ticket", "1", "success", long)

	assert.Equal(t, strings.Repeat("é", MaxDetailsLength), event.Details)
	assert.True(t, utf8.ValidString(event.Details))
}

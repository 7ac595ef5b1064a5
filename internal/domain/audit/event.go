// Package audit defines the append-only audit trail: who did what to which
// entity, and whether it worked. Events are immutable once recorded.
package audit

import (
	"context"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/timeutil"
)

// MaxDetailsLength is the hard cap on the free-text details field.
const MaxDetailsLength = 200

// Actor identifies who performed an action. The zero value means no
// authenticated actor was available.
type Actor struct {
	ID       string
	Username string
	Role     string
}

// Anonymous returns the placeholder actor used for unauthenticated actions.
func Anonymous() Actor {
	return Actor{
		ID:       constants.AnonymousUserID,
		Username: constants.UnknownUsername,
		Role:     constants.UnknownRole,
	}
}

// Event is one audit record. It is also its own wire form: every field is a
// string and the struct is appended to the log verbatim, one JSON object per
// line. Passwords and password hashes must never appear in any field.
type Event struct {
	Timestamp string `json:"timestamp"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"`
	Status    string `json:"status"`
	Details   string `json:"details"`
}

// NewEvent builds an audit event stamped with the current UTC time. An actor
// with an empty ID is replaced by the anonymous placeholder, and details are
// hard-truncated to MaxDetailsLength characters.
func NewEvent(actor Actor, action, entity, entityID, status, details string) Event {
	if actor.ID == "" {
		actor = Anonymous()
	}

	if runes := []rune(details); len(runes) > MaxDetailsLength {
		details = string(runes[:MaxDetailsLength])
	}

	return Event{
		Timestamp: timeutil.FormatTimestamp(timeutil.NowUTC()),
		UserID:    actor.ID,
		Username:  actor.Username,
		Role:      actor.Role,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Status:    status,
		Details:   details,
	}
}

// Sink receives audit events. The production sink appends to a flat file;
// tests substitute an in-memory collector.
type Sink interface {
	Record(ctx context.Context, event Event) error
}

package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/timeutil"
)

// Free-text field bounds, applied after sanitization. Counted in characters,
// not bytes.
const (
	TitleMinLength       = 3
	TitleMaxLength       = 100
	DescriptionMinLength = 3
	DescriptionMaxLength = 500
)

// Ticket represents a support request. The owner and assignee are weak
// references: bare account IDs that are never validated against the account
// store, so they may point at accounts that no longer exist.
type Ticket struct {
	id          string
	ownerID     string
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	assigneeID  string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a new ticket in status open with no assignee.
func NewTicket(ownerID string, title string, description string, priority vo.Priority) (*Ticket, error) {
	if len(ownerID) == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := timeutil.NowUTC()
	return &Ticket{
		ownerID:     ownerID,
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		assigneeID:  "",
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence. Status and priority
// are taken as stored; drifted enum values are kept, not repaired.
func ReconstructTicket(
	id string,
	ownerID string,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	assigneeID string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(ownerID) == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Ticket{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) OwnerID() string {
	return t.ownerID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

// AssigneeID returns the assigned agent's account ID, or "" when unassigned.
func (t *Ticket) AssigneeID() string {
	return t.assigneeID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id string) error {
	if len(t.id) > 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("ticket ID cannot be empty")
	}
	t.id = id
	return nil
}

// UpdateTitle replaces the title. Returns whether the stored value changed.
func (t *Ticket) UpdateTitle(newTitle string) (bool, error) {
	if err := validateTitle(newTitle); err != nil {
		return false, err
	}
	if t.title == newTitle {
		return false, nil
	}

	t.title = newTitle
	t.touch()
	return true, nil
}

// UpdateDescription replaces the description. Returns whether the stored
// value changed.
func (t *Ticket) UpdateDescription(newDescription string) (bool, error) {
	if err := validateDescription(newDescription); err != nil {
		return false, err
	}
	if t.description == newDescription {
		return false, nil
	}

	t.description = newDescription
	t.touch()
	return true, nil
}

// ChangePriority sets a new priority. Returns whether the stored value
// changed; requesting the current priority is a no-op.
func (t *Ticket) ChangePriority(newPriority vo.Priority) (bool, error) {
	if !newPriority.IsValid() {
		return false, fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return false, nil
	}

	t.priority = newPriority
	t.touch()
	return true, nil
}

// ChangeStatus moves the ticket through the status state machine. Requesting
// the current status is a no-op (changed=false, no error); an illegal
// transition, including any transition out of closed, is an error.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return false, nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return false, fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.touch()
	return true, nil
}

// Assign sets the assignee. Any account ID is accepted, including one that
// does not resolve to an account; an empty string unassigns the ticket.
func (t *Ticket) Assign(assigneeID string) bool {
	if t.assigneeID == assigneeID {
		return false
	}

	t.assigneeID = assigneeID
	t.touch()
	return true
}

// CanBeAccessedBy reports whether the requester may view or edit the ticket.
// Agents access every ticket; regular users only their own.
func (t *Ticket) CanBeAccessedBy(accountID string, role string) bool {
	if role == constants.RoleAgent {
		return true
	}
	return t.ownerID == accountID
}

func (t *Ticket) touch() {
	t.updatedAt = timeutil.NowUTC()
}

func validateTitle(title string) error {
	length := utf8.RuneCountInString(title)
	if length < TitleMinLength || length > TitleMaxLength {
		return fmt.Errorf("title must be between %d and %d characters", TitleMinLength, TitleMaxLength)
	}
	return nil
}

func validateDescription(description string) error {
	length := utf8.RuneCountInString(description)
	if length < DescriptionMinLength || length > DescriptionMaxLength {
		return fmt.Errorf("description must be between %d and %d characters", DescriptionMinLength, DescriptionMaxLength)
	}
	return nil
}

// Package constants defines role names and audit action identifiers shared
// across the application.
package constants

// Account roles
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// Audit actor placeholders used when no authenticated actor is available
const (
	AnonymousUserID = "anonymous"
	UnknownUsername = "unknown"
	UnknownRole     = "unknown"
	UnknownEntityID = "N/A"
)

// Audit actions
const (
	ActionRegister             = "REGISTER"
	ActionLogin                = "LOGIN"
	ActionLoginFailed          = "LOGIN_FAILED"
	ActionLogout               = "LOGOUT"
	ActionTicketCreate         = "TICKET_CREATE"
	ActionTicketStatusChange   = "TICKET_STATUS_CHANGE"
	ActionTicketPriorityChange = "TICKET_PRIORITY_CHANGE"
	ActionTicketAssigneeChange = "TICKET_ASSIGNEE_CHANGE"
	ActionTicketDelete         = "TICKET_DELETE"
)

// Audit entities
const (
	EntityUser   = "user"
	EntityTicket = "ticket"
)

// Audit outcome values
const (
	AuditStatusSuccess = "success"
	AuditStatusFailed  = "failed"
)

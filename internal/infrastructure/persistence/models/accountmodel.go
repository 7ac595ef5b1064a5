// Package models holds the flat record forms stored in the JSON-lines files.
// Every field is a string; unknown fields in a stored line are ignored and
// missing fields decode to "", so schema drift degrades to empty values
// instead of load failures.
package models

import (
	"helpdesk/internal/domain/account"
	accountvo "helpdesk/internal/domain/account/valueobjects"
	"helpdesk/internal/shared/timeutil"
)

// AccountModel is the stored form of an account record.
type AccountModel struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// AccountToModel maps the aggregate to its stored form.
func AccountToModel(a *account.Account) AccountModel {
	return AccountModel{
		ID:           a.ID(),
		Username:     a.Username(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		CreatedAt:    timeutil.FormatTimestamp(a.CreatedAt()),
		UpdatedAt:    timeutil.FormatTimestamp(a.UpdatedAt()),
	}
}

// ToAggregate rebuilds the account aggregate. Records without id, username or
// password hash are rejected (the caller drops them); unparseable timestamps
// degrade to the zero time rather than failing the record.
func (m AccountModel) ToAggregate() (*account.Account, error) {
	createdAt, _ := timeutil.ParseTimestamp(m.CreatedAt)
	updatedAt, _ := timeutil.ParseTimestamp(m.UpdatedAt)

	return account.ReconstructAccount(
		m.ID,
		m.Username,
		m.PasswordHash,
		accountvo.Role(m.Role),
		createdAt,
		updatedAt,
	)
}

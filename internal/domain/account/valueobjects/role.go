package valueobjects

import "fmt"

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

var validRoles = map[Role]bool{
	RoleUser:  true,
	RoleAgent: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsUser() bool {
	return r == RoleUser
}

func (r Role) IsAgent() bool {
	return r == RoleAgent
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

package auth

import "helpdesk/internal/shared/constants"

// IsAgent checks if the role grants agent capabilities
func IsAgent(role string) bool {
	return role == constants.RoleAgent
}

// IsRegularUser checks if the role is a regular user
func IsRegularUser(role string) bool {
	return role == constants.RoleUser
}

// HasRole checks if the role matches a specific target role
func HasRole(role string, targetRole string) bool {
	return role == targetRole
}

package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAgent.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, RoleUser.IsUser())
	assert.False(t, RoleUser.IsAgent())
	assert.True(t, RoleAgent.IsAgent())
	assert.False(t, RoleAgent.IsUser())
}

func TestNewRole(t *testing.T) {
	role, err := NewRole("agent")
	require.NoError(t, err)
	assert.Equal(t, RoleAgent, role)

	_, err = NewRole("supervisor")
	assert.Error(t, err)
}

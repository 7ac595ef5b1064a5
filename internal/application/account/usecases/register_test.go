package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/audit"
	vo "helpdesk/internal/domain/account/valueobjects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	var saved *account.Account
	mockRepo := &mockAccountRepository{
		SaveFunc: func(ctx context.Context, acc *account.Account) error {
			if err := acc.SetID("1"); err != nil {
				return err
			}
			saved = acc
			return nil
		},
	}
	sink := &mockAuditSink{}
	uc := NewRegisterUseCase(mockRepo, sink, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Password: "secret1",
		Role:     "user",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "1", result.AccountID)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, "user", result.Role)

	require.NotNil(t, saved)
	assert.Equal(t, vo.HashPassword("secret1"), saved.PasswordHash())

	require.Len(t, sink.Events, 1)
	event := sink.Events[0]
	assert.Equal(t, constants.ActionRegister, event.Action)
	assert.Equal(t, constants.AnonymousUserID, event.UserID)
	assert.Equal(t, "1", event.EntityID)
	assert.Equal(t, constants.AuditStatusSuccess, event.Status)
	assert.Equal(t, "New user alice with role user", event.Details)
	assert.NotContains(t, event.Details, "secret1")
}

func TestRegisterUseCase_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		command RegisterCommand
	}{
		{"username too short", RegisterCommand{Username: "ab", Password: "secret1", Role: "user"}},
		{"username too long", RegisterCommand{Username: "a23456789012345678901234567890x", Password: "secret1", Role: "user"}},
		{"username with illegal characters", RegisterCommand{Username: "ali ce!", Password: "secret1", Role: "user"}},
		{"password too short", RegisterCommand{Username: "alice", Password: "abc", Role: "user"}},
		{"unknown role", RegisterCommand{Username: "alice", Password: "secret1", Role: "admin"}},
		{"empty command", RegisterCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockAccountRepository{}
			sink := &mockAuditSink{}
			uc := NewRegisterUseCase(mockRepo, sink, logger.NewLogger())

			result, err := uc.Execute(context.Background(), tt.command)

			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Empty(t, sink.Events)
		})
	}
}

func TestRegisterUseCase_Execute_UsernameTaken(t *testing.T) {
	existing, err := account.NewAccount("alice", vo.HashPassword("other"), vo.RoleUser)
	require.NoError(t, err)

	mockRepo := &mockAccountRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*account.Account, error) {
			return existing, nil
		},
	}
	sink := &mockAuditSink{}
	uc := NewRegisterUseCase(mockRepo, sink, logger.NewLogger())

	result, execErr := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Password: "secret1",
		Role:     "user",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(execErr))
	assert.Empty(t, sink.Events)
}

func TestRegisterUseCase_Execute_AuditFailureDoesNotFailRegistration(t *testing.T) {
	mockRepo := &mockAccountRepository{
		SaveFunc: func(ctx context.Context, acc *account.Account) error {
			return acc.SetID("1")
		},
	}
	sink := &mockAuditSink{
		RecordFunc: func(ctx context.Context, event audit.Event) error {
			return stderrors.New("disk full")
		},
	}
	uc := NewRegisterUseCase(mockRepo, sink, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Password: "secret1",
		Role:     "user",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
}

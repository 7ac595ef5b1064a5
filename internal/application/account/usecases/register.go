package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/account"
	vo "helpdesk/internal/domain/account/valueobjects"
	"helpdesk/internal/domain/audit"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type RegisterCommand struct {
	Username string `json:"username" validate:"required,min=3,max=30,username_chars"`
	Password string `json:"password" validate:"required,min=6,max=64"`
	Role     string `json:"role" validate:"required,oneof=user agent"`
}

type RegisterResult struct {
	AccountID string
	Username  string
	Role      string
}

// RegisterUseCase handles the business logic for registering an account
type RegisterUseCase struct {
	accountRepo account.AccountRepository
	auditSink   audit.Sink
	logger      logger.Interface
}

func NewRegisterUseCase(
	accountRepo account.AccountRepository,
	auditSink audit.Sink,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		accountRepo: accountRepo,
		auditSink:   auditSink,
		logger:      logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid register command", "username", cmd.Username, "error", err)
		return nil, err
	}

	existing, err := uc.accountRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check for existing account", "username", cmd.Username, "error", err)
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("username already taken", "username", cmd.Username)
		return nil, errors.NewConflictError("username already taken", cmd.Username)
	}

	newAccount, err := account.NewAccount(cmd.Username, vo.HashPassword(cmd.Password), vo.Role(cmd.Role))
	if err != nil {
		uc.logger.Errorw("failed to create account entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Save(ctx, newAccount); err != nil {
		uc.logger.Errorw("failed to save account", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.recordAudit(ctx, newAccount)

	uc.logger.Infow("account registered", "account_id", newAccount.ID(), "username", newAccount.Username())

	return &RegisterResult{
		AccountID: newAccount.ID(),
		Username:  newAccount.Username(),
		Role:      newAccount.Role().String(),
	}, nil
}

// recordAudit writes the registration event. Registration happens before any
// session exists, so the event carries the anonymous actor.
func (uc *RegisterUseCase) recordAudit(ctx context.Context, acc *account.Account) {
	event := audit.NewEvent(
		audit.Anonymous(),
		constants.ActionRegister,
		constants.EntityUser,
		acc.ID(),
		constants.AuditStatusSuccess,
		fmt.Sprintf("New user %s with role %s", acc.Username(), acc.Role()),
	)
	if err := uc.auditSink.Record(ctx, event); err != nil {
		uc.logger.Warnw("failed to record audit event", "action", event.Action, "error", err)
	}
}

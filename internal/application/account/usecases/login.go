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
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccountID string
	Username  string
	Role      string
}

// LoginUseCase handles credential verification. Unknown usernames and wrong
// passwords produce the same error so callers cannot enumerate accounts.
type LoginUseCase struct {
	accountRepo account.AccountRepository
	auditSink   audit.Sink
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo account.AccountRepository,
	auditSink audit.Sink,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		auditSink:   auditSink,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "username", cmd.Username)

	if len(cmd.Username) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("username and password are required")
	}

	acc, err := uc.accountRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to look up account", "username", cmd.Username, "error", err)
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if acc == nil || !vo.VerifyPassword(cmd.Password, acc.PasswordHash()) {
		uc.recordFailure(ctx, cmd.Username)
		uc.logger.Warnw("login failed", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	uc.recordSuccess(ctx, acc)
	uc.logger.Infow("login succeeded", "account_id", acc.ID(), "username", acc.Username())

	return &LoginResult{
		AccountID: acc.ID(),
		Username:  acc.Username(),
		Role:      acc.Role().String(),
	}, nil
}

func (uc *LoginUseCase) recordSuccess(ctx context.Context, acc *account.Account) {
	event := audit.NewEvent(
		audit.Actor{ID: acc.ID(), Username: acc.Username(), Role: acc.Role().String()},
		constants.ActionLogin,
		constants.EntityUser,
		acc.ID(),
		constants.AuditStatusSuccess,
		"",
	)
	if err := uc.auditSink.Record(ctx, event); err != nil {
		uc.logger.Warnw("failed to record audit event", "action", event.Action, "error", err)
	}
}

// recordFailure logs the attempt under the anonymous actor. The attempted
// username goes in the details only; the actor fields stay anonymous because
// the attempt never proved an identity.
func (uc *LoginUseCase) recordFailure(ctx context.Context, username string) {
	event := audit.NewEvent(
		audit.Anonymous(),
		constants.ActionLoginFailed,
		constants.EntityUser,
		constants.UnknownEntityID,
		constants.AuditStatusFailed,
		fmt.Sprintf("login failed for username=%s", username),
	)
	if err := uc.auditSink.Record(ctx, event); err != nil {
		uc.logger.Warnw("failed to record audit event", "action", event.Action, "error", err)
	}
}

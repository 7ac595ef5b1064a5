package console

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	accountuc "helpdesk/internal/application/account/usecases"
	ticketuc "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive helpdesk console",
		Long:  `Start the interactive helpdesk console with the configured record files.`,
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting console",
		"users_file", cfg.UsersPath(),
		"tickets_file", cfg.TicketsPath(),
		"audit_file", cfg.AuditPath())

	accountRepo := repository.NewFileAccountRepository(cfg.UsersPath(), log)
	ticketRepo := repository.NewFileTicketRepository(cfg.TicketsPath(), log)
	auditSink := repository.NewFileAuditSink(cfg.AuditPath())

	usecases := UseCases{
		Register: accountuc.NewRegisterUseCase(accountRepo, auditSink, log),
		Login:    accountuc.NewLoginUseCase(accountRepo, auditSink, log),
		Create:   ticketuc.NewCreateTicketUseCase(ticketRepo, auditSink, log),
		List:     ticketuc.NewListTicketsUseCase(ticketRepo, log),
		Get:      ticketuc.NewGetTicketUseCase(ticketRepo, log),
		Update:   ticketuc.NewUpdateTicketUseCase(ticketRepo, auditSink, log),
		Delete:   ticketuc.NewDeleteTicketUseCase(ticketRepo, auditSink, log),
	}

	console := New(os.Stdin, os.Stdout, usecases, auditSink, log)
	return console.Run(cmd.Context())
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/console"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - a file-backed ticket management console",
		Long:  `Helpdesk is a terminal ticket manager with flat-file storage, role-gated ticket operations, and an append-only audit log.`,
	}

	rootCmd.AddCommand(
		console.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

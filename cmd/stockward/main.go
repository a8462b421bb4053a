package main

import (
	"os"

	"github.com/spf13/cobra"

	"stockward/internal/interfaces/cli/bootstrap"
	"stockward/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockward",
		Short: "Stockward - inventory management API",
		Long:  `Stockward is a role-aware inventory management API with a full audit trail.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		bootstrap.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

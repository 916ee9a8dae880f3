package main

import (
	"fmt"

	psqlRepo "runGuard/internal/repository/postgres"
	"runGuard/pkg/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var rollback bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}

			if rollback {
				if err := psqlRepo.RollbackLast(db); err != nil {
					return fmt.Errorf("rollback: %w", err)
				}
				logger.Info("Rolled back last migration")
				return nil
			}

			if err := psqlRepo.RunMigrations(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("Migrations applied")
			return nil
		},
	}

	cmd.Flags().BoolVar(&rollback, "rollback", false, "Roll back the most recent migration instead")

	return cmd
}

// Package main provides the routectl operator CLI.
package main

import (
	"fmt"
	"os"

	"runGuard/pkg/config"
	"runGuard/pkg/database"
	"runGuard/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "routectl",
		Short:         "Operate the runGuard route recommendation service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newRunCmd(),
		newRecommendCmd(),
		newTokenCmd(),
	)

	return rootCmd
}

// connect loads the environment config and opens the route store.
func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, db, nil
}

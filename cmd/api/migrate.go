package main

import (
	"github.com/spf13/cobra"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/adapters/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and indexes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := repository.Migrate(cmd.Context(), a.db); err != nil {
			return err
		}

		log.WithField("driver", cfg.DB.Driver).Info("Schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

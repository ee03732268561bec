package main

import (
	"github.com/spf13/cobra"

	"github.com/d60-Lab/comedor/pkg/database"
	"github.com/d60-Lab/comedor/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("migration finished")
		return nil
	},
}

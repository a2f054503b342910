package main

import (
	"github.com/JosephJoshua/posad/internal/core/storage/postgres"
	"github.com/JosephJoshua/posad/internal/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := postgres.Open(cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		return migrations.RunMigrations(db, true)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")

		db, err := postgres.Open(cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		return migrations.Down(db, steps)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)

	migrateDownCmd.Flags().Int("steps", 1, "number of migrations to roll back")
}

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/EcoPack/internal/config"
	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and seed the materials catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.Database.URL == "" {
			return errors.New("database url is required")
		}
		logger := newLogger(cfg.Logging)

		db, err := store.NewPostgresStore(cmd.Context(), cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(cmd.Context()); err != nil {
			logger.Error("migration failed", "error", err)
			return err
		}
		logger.Info("migrations applied")
		return nil
	},
}

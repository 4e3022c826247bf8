package main

import (
	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/app"
	"github.com/spf13/cobra"
)

func newServeCmd(getConfig func() config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := app.InitializeApp(cmd.Context(), getConfig())
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
}

func newMigrateCmd(getConfig func() config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.MigrateDatabase(cmd.Context(), getConfig().Database)
		},
	}
}

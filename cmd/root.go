package main

import (
	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/app"
	"github.com/spf13/cobra"
)

// loadConfig parses the environment and configures logging. Commands
// receive it through their closures.
func loadConfig(envFile string) (config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, err
	}
	app.InitializeLogger(cfg.Log)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		cfg     config.Config
	)

	root := &cobra.Command{
		Use:           "menu-service",
		Short:         "Restaurant menu API with a read-through cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(envFile)
			return err
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")

	getConfig := func() config.Config { return cfg }
	serve := newServeCmd(getConfig)

	root.RunE = serve.RunE
	root.AddCommand(
		serve,
		newMigrateCmd(getConfig),
		newDiscountCmd(getConfig),
	)
	return root
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Переменные окружения с учетными данными администратора
const (
	envUsername = "ADMIN_USERNAME"
	envPassword = "ADMIN_PASSWORD"
)

type rootOptions struct {
	ConfigPath string
	Username   string
	Password   string
	Verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "adminctl",
		Short:         "Command line access to the salon admin panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// .env необязателен
			_ = godotenv.Load()
			if opts.Username == "" {
				opts.Username = os.Getenv(envUsername)
			}
			if opts.Password == "" {
				opts.Password = os.Getenv(envPassword)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "config.toml", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.Username, "username", "", "admin username (or "+envUsername+")")
	cmd.PersistentFlags().StringVar(&opts.Password, "password", "", "admin password (or "+envPassword+")")
	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "write service logs to stdout")

	cmd.AddCommand(newFamiliesCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newDeleteCmd(opts))
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

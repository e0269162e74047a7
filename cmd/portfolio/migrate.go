package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/config"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/database"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/repository"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/service"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the collection tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(opts.Config)
			if err != nil {
				return err
			}
			db, err := database.Open(conf.Server.DatabaseDriver, conf.Server.DatabaseDsn)
			if err != nil {
				return err
			}
			if err := repository.NewRepositories(db).Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrated")
			return nil
		},
	}
}

// NewHashTokenCommand prints the value to put in sync.tokenHash.
func NewHashTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-token <token>",
		Short: "Hash a sync token for the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := service.HashSyncToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

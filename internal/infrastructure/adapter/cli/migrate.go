package cli

import (
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/bootstrap"
	"github.com/spf13/cobra"
)

// MigrateResult is printed after a successful migration
type MigrateResult struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(opts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema to the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, opts, open, func(c *bootstrap.Container) error {
				if err := c.Migrate(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), MigrateResult{
					Status:  "ok",
					Version: migration.CurrentSchemaVersion,
				}, opts.Pretty)
			})
		},
	}
}

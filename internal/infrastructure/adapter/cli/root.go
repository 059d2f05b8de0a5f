package cli

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Pretty     bool
}

// Opener builds the service container a command runs against.
type Opener func(ctx context.Context, opts *RootOptions) (*bootstrap.Container, error)

// DefaultOpener loads configuration the same way the API server does and connects to the store.
// Logs go to stderr so JSON on stdout stays parseable.
func DefaultOpener(ctx context.Context, opts *RootOptions) (*bootstrap.Container, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigFile != "" {
		cfg, err = config.LoadConfigFile(opts.ConfigFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.Logger.Output = "stderr"
	log := logger.NewZapLogger(cfg.Logger, cfg.Environment == config.Production)

	return bootstrap.New(cfg, log, timeadapter.NewRealTimeProvider())
}

// NewRootCommand creates the root command for the libctl CLI.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "libctl",
		Short: "Library lending administration",
		Long: `Administer the school library store directly: run schema migrations,
import student and book spreadsheets, and print lending reports as JSON.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file (default: configs/<LIB_ENV>.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.Pretty, "pretty", false, "indent JSON output")

	cmd.AddCommand(NewMigrateCommand(opts, open))
	cmd.AddCommand(NewImportCommand(opts, open))
	cmd.AddCommand(NewReportCommand(opts, open))
	cmd.AddCommand(NewLoansCommand(opts, open))

	return cmd
}

// withContainer opens a container for the duration of fn
func withContainer(cmd *cobra.Command, opts *RootOptions, open Opener, fn func(c *bootstrap.Container) error) error {
	c, err := open(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	return fn(c)
}

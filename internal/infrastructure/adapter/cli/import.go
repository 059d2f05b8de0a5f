package cli

import (
	"fmt"
	"os"

	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/spreadsheet"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/bootstrap"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command with its students and books subcommands.
func NewImportCommand(opts *RootOptions, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Upsert students or books from a CSV export of the school sheets",
	}

	cmd.AddCommand(newImportStudentsCommand(opts, open))
	cmd.AddCommand(newImportBooksCommand(opts, open))

	return cmd
}

func newImportStudentsCommand(opts *RootOptions, open Opener) *cobra.Command {
	var file, class string

	cmd := &cobra.Command{
		Use:   "students",
		Short: "Upsert students keyed on their optional ID",
		Long: `Upsert students from CSV. Recognised headers are id, first_name, last_name and class,
plus the school sheet headers "Student First Name (In English)" and
"Student Last Name (In English)". Without a class column every row gets --class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			rows, err := spreadsheet.ParseStudents(f, class)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			return withContainer(cmd, opts, open, func(c *bootstrap.Container) error {
				summary, err := c.Catalog.UpsertStudents(cmd.Context(), rows)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.NewBatchResponse("Upsert complete for students", summary, true), opts.Pretty)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file to import")
	cmd.Flags().StringVar(&class, "class", "", "class for sheets without a class column, usually the sheet name")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newImportBooksCommand(opts *RootOptions, open Opener) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Upsert books keyed on barcode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			rows, err := spreadsheet.ParseBooks(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			return withContainer(cmd, opts, open, func(c *bootstrap.Container) error {
				summary, err := c.Catalog.UpsertBooks(cmd.Context(), rows)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.NewBatchResponse("Upsert complete for books", summary, true), opts.Pretty)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file to import")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

package cli

import (
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/bootstrap"
	"github.com/spf13/cobra"
)

// NewReportCommand creates the report command.
func NewReportCommand(opts *RootOptions, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print lending reports",
	}

	var date string
	daily := &cobra.Command{
		Use:   "daily",
		Short: "List the checkouts of one calendar day in the library time zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, opts, open, func(c *bootstrap.Container) error {
				entries, err := c.Reports.DailyReport(cmd.Context(), date)
				if err != nil {
					return err
				}

				out := make([]dto.DailyReportEntryResponse, 0, len(entries))
				for _, e := range entries {
					out = append(out, dto.DailyReportEntryResponse{
						FirstName:    e.FirstName,
						LastName:     e.LastName,
						Class:        e.Class,
						BookTitle:    e.BookTitle,
						CheckoutDate: e.CheckoutDate,
					})
				}
				return writeJSON(cmd.OutOrStdout(), out, opts.Pretty)
			})
		},
	}
	daily.Flags().StringVarP(&date, "date", "d", "", "day to report, YYYY-MM-DD")
	_ = daily.MarkFlagRequired("date")

	cmd.AddCommand(daily)
	return cmd
}

// NewLoansCommand creates the loans command.
func NewLoansCommand(opts *RootOptions, open Opener) *cobra.Command {
	var studentID uint64

	cmd := &cobra.Command{
		Use:   "loans",
		Short: "List the books a student currently holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, opts, open, func(c *bootstrap.Container) error {
				loans, err := c.Loans.ActiveLoansForStudent(cmd.Context(), studentID)
				if err != nil {
					return err
				}

				out := make([]dto.ActiveLoanResponse, 0, len(loans))
				for _, l := range loans {
					out = append(out, dto.ActiveLoanResponse{
						Title:        l.Title,
						Barcode:      l.Barcode,
						CheckoutDate: l.CheckoutDate,
					})
				}
				return writeJSON(cmd.OutOrStdout(), out, opts.Pretty)
			})
		},
	}
	cmd.Flags().Uint64VarP(&studentID, "student", "s", 0, "student ID")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

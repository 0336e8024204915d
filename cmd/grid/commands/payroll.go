package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// NewPayrollRunsCommand creates the payroll command group.
func NewPayrollRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payroll",
		Aliases: []string{"payroll-runs"},
		Short:   "View payroll runs",
		Long:    "List payroll runs, show run details, and list payments within a run",
	}

	cmd.AddCommand(newPayrollListCommand())
	cmd.AddCommand(newPayrollGetCommand())
	cmd.AddCommand(newPayrollPaymentsCommand())

	return cmd
}

func newPayrollListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		cursor   string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payroll runs",
		Long:  "List payroll runs, one page at a time or all pages with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := listLimitOptions(limit, cursor)
			if status != "" {
				opts.WithFilter("status", status)
			}

			if allPages {
				runs, err := client.PayrollRuns().ListAll(ctx, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list payroll runs: %w", err)
				}

				return renderOutput(runs, func() error {
					return renderPayrollRunTable(runs, nil)
				})
			}

			page, err := client.PayrollRuns().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list payroll runs: %w", err)
			}

			return renderOutput(page.Results, func() error {
				return renderPayrollRunTable(page.Results, page)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor to resume from")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, approved, processed)")

	return cmd
}

func renderPayrollRunTable(runs []gridapi.PayrollRun, page *gridapi.ListResponse[gridapi.PayrollRun]) error {
	if len(runs) == 0 {
		_, _ = os.Stdout.WriteString("No payroll runs found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "Period Start", "Period End", "Pay Date")

	for _, run := range runs {
		_ = table.Append(run.ID, string(run.Status),
			run.PayPeriodStart, run.PayPeriodEnd, run.PayDate)
	}

	_ = table.Render()

	if page != nil {
		printPageFooter(page)
	}

	return nil
}

func newPayrollGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYROLL_RUN_ID",
		Short: "Get payroll run details",
		Long:  "Display detailed information about a specific payroll run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			run, err := client.PayrollRuns().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payroll run: %w", err)
			}

			return renderOutput(run, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", run.ID)
				_ = table.Append("Status", string(run.Status))
				_ = table.Append("Period Start", run.PayPeriodStart)
				_ = table.Append("Period End", run.PayPeriodEnd)
				_ = table.Append("Pay Date", run.PayDate)
				_ = table.Append("Created", run.CreatedAt.Format(time.RFC3339))
				_ = table.Append("Updated", run.UpdatedAt.Format(time.RFC3339))

				_, _ = os.Stdout.WriteString("Payroll run details:\n\n")

				_ = table.Render()

				return nil
			})
		},
	}
}

func newPayrollPaymentsCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		cursor   string
	)

	cmd := &cobra.Command{
		Use:   "payments PAYROLL_RUN_ID",
		Short: "List payments in a payroll run",
		Long:  "List the per-employee payments within a payroll run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := listLimitOptions(limit, cursor)
			runID := args[0]

			if allPages {
				payments, err := client.PayrollRuns().ListAllPayments(ctx, runID, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list payments: %w", err)
				}

				return renderOutput(payments, func() error {
					return renderPaymentTable(payments, nil)
				})
			}

			page, err := client.PayrollRuns().ListPayments(ctx, runID, opts)
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}

			return renderOutput(page.Results, func() error {
				return renderPaymentTable(page.Results, page)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor to resume from")

	return cmd
}

func renderPaymentTable(payments []gridapi.PayrollPayment, page *gridapi.ListResponse[gridapi.PayrollPayment]) error {
	if len(payments) == 0 {
		_, _ = os.Stdout.WriteString("No payments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Employee", "Gross", "Net", "Currency")

	for _, payment := range payments {
		_ = table.Append(payment.ID, payment.EmployeeID,
			payment.GrossAmount, payment.NetAmount, payment.Currency)
	}

	_ = table.Render()

	if page != nil {
		printPageFooter(page)
	}

	return nil
}

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

// NewCompensationsCommand creates the compensations command group.
func NewCompensationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compensations",
		Aliases: []string{"compensation", "comp"},
		Short:   "View compensation records",
		Long:    "List compensation records and show compensation details",
	}

	cmd.AddCommand(newCompensationsListCommand())
	cmd.AddCommand(newCompensationsGetCommand())

	return cmd
}

func newCompensationsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		cursor   string
		employee string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List compensation records",
		Long:  "List compensation records, one page at a time or all pages with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := listLimitOptions(limit, cursor)
			if employee != "" {
				opts.WithFilter("employee_id", employee)
			}

			if allPages {
				compensations, err := client.Compensations().ListAll(ctx, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list compensations: %w", err)
				}

				return renderOutput(compensations, func() error {
					return renderCompensationTable(compensations, nil)
				})
			}

			page, err := client.Compensations().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list compensations: %w", err)
			}

			return renderOutput(page.Results, func() error {
				return renderCompensationTable(page.Results, page)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor to resume from")
	cmd.Flags().StringVar(&employee, "employee", "", "filter by employee ID")

	return cmd
}

func renderCompensationTable(compensations []gridapi.Compensation, page *gridapi.ListResponse[gridapi.Compensation]) error {
	if len(compensations) == 0 {
		_, _ = os.Stdout.WriteString("No compensation records found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Employee", "Amount", "Currency", "Pay Period", "Effective")

	for _, compensation := range compensations {
		_ = table.Append(compensation.ID, compensation.EmployeeID,
			compensation.Amount, compensation.Currency,
			string(compensation.PayPeriod), compensation.EffectiveDate)
	}

	_ = table.Render()

	if page != nil {
		printPageFooter(page)
	}

	return nil
}

func newCompensationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COMPENSATION_ID",
		Short: "Get compensation details",
		Long:  "Display detailed information about a specific compensation record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			compensation, err := client.Compensations().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get compensation: %w", err)
			}

			return renderOutput(compensation, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", compensation.ID)
				_ = table.Append("Employee", compensation.EmployeeID)
				_ = table.Append("Amount", compensation.Amount)
				_ = table.Append("Currency", compensation.Currency)
				_ = table.Append("Pay Period", string(compensation.PayPeriod))
				_ = table.Append("Effective Date", compensation.EffectiveDate)
				_ = table.Append("End Date", formatStringPtr(compensation.EndDate))
				_ = table.Append("Created", compensation.CreatedAt.Format(time.RFC3339))
				_ = table.Append("Updated", compensation.UpdatedAt.Format(time.RFC3339))

				_, _ = os.Stdout.WriteString("Compensation details:\n\n")

				_ = table.Render()

				return nil
			})
		},
	}
}

package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// NewTimeEntriesCommand creates the time-entries command group.
func NewTimeEntriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "time-entries",
		Aliases: []string{"time-entry", "time"},
		Short:   "Manage time entries",
		Long:    "List, create, and delete logged time entries",
	}

	cmd.AddCommand(newTimeEntriesListCommand())
	cmd.AddCommand(newTimeEntriesGetCommand())
	cmd.AddCommand(newTimeEntriesCreateCommand())
	cmd.AddCommand(newTimeEntriesDeleteCommand())

	return cmd
}

func newTimeEntriesListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		cursor   string
		employee string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		Long:  "List time entries, one page at a time or all pages with --all",
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
				entries, err := client.TimeEntries().ListAll(ctx, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list time entries: %w", err)
				}

				return renderOutput(entries, func() error {
					return renderTimeEntryTable(entries, nil)
				})
			}

			page, err := client.TimeEntries().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list time entries: %w", err)
			}

			return renderOutput(page.Results, func() error {
				return renderTimeEntryTable(page.Results, page)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor to resume from")
	cmd.Flags().StringVar(&employee, "employee", "", "filter by employee ID")

	return cmd
}

func renderTimeEntryTable(entries []gridapi.TimeEntry, page *gridapi.ListResponse[gridapi.TimeEntry]) error {
	if len(entries) == 0 {
		_, _ = os.Stdout.WriteString("No time entries found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Employee", "Date", "Hours", "Approved", "Project")

	for _, entry := range entries {
		_ = table.Append(entry.ID, entry.EmployeeID, entry.Date,
			strconv.FormatFloat(entry.Hours, 'f', -1, 64),
			formatBool(entry.Approved),
			formatStringPtr(entry.ProjectID))
	}

	_ = table.Render()

	if page != nil {
		printPageFooter(page)
	}

	return nil
}

func newTimeEntriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TIME_ENTRY_ID",
		Short: "Get time entry details",
		Long:  "Display detailed information about a specific time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			entry, err := client.TimeEntries().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get time entry: %w", err)
			}

			return renderOutput(entry, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", entry.ID)
				_ = table.Append("Employee", entry.EmployeeID)
				_ = table.Append("Date", entry.Date)
				_ = table.Append("Hours", strconv.FormatFloat(entry.Hours, 'f', -1, 64))
				_ = table.Append("Approved", formatBool(entry.Approved))
				_ = table.Append("Project", formatStringPtr(entry.ProjectID))
				_ = table.Append("Note", formatStringPtr(entry.Note))
				_ = table.Append("Created", entry.CreatedAt.Format(time.RFC3339))
				_ = table.Append("Updated", entry.UpdatedAt.Format(time.RFC3339))

				_, _ = os.Stdout.WriteString("Time entry details:\n\n")

				_ = table.Render()

				return nil
			})
		},
	}
}

func newTimeEntriesCreateCommand() *cobra.Command {
	var (
		employee string
		date     string
		hours    float64
		project  string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a time entry",
		Long:  "Log a new time entry for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateDate(date)
			if err != nil {
				return err
			}

			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request := &gridapi.TimeEntryCreateRequest{
				EmployeeID: employee,
				Date:       date,
				Hours:      hours,
			}

			if project != "" {
				request.ProjectID = &project
			}

			if note != "" {
				request.Note = &note
			}

			entry, err := client.TimeEntries().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create time entry: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created time entry %s (%s, %sh)\n",
				entry.ID, entry.Date, strconv.FormatFloat(entry.Hours, 'f', -1, 64))

			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "employee ID (required)")
	cmd.Flags().StringVar(&date, "date", "", "work date (YYYY-MM-DD, required)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "hours worked (required)")
	cmd.Flags().StringVar(&project, "project", "", "project ID")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newTimeEntriesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TIME_ENTRY_ID",
		Short: "Delete a time entry",
		Long:  "Delete a logged time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID := args[0]

			if !force {
				fmt.Fprintf(os.Stdout, "Really delete time entry '%s'? (y/N): ", entryID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			err = client.TimeEntries().Delete(context.Background(), entryID)
			if err != nil {
				return fmt.Errorf("failed to delete time entry: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted time entry '%s'\n", entryID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

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

// NewLeaveRequestsCommand creates the leave command group.
func NewLeaveRequestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leave",
		Aliases: []string{"leave-requests"},
		Short:   "Manage leave requests",
		Long:    "List, create, approve, decline, and cancel leave requests",
	}

	cmd.AddCommand(newLeaveListCommand())
	cmd.AddCommand(newLeaveGetCommand())
	cmd.AddCommand(newLeaveCreateCommand())
	cmd.AddCommand(newLeaveTransitionCommand("approve", "Approve a leave request",
		func(ctx context.Context, client gridapi.Client, id string) (*gridapi.LeaveRequest, error) {
			return client.LeaveRequests().Approve(ctx, id)
		}))
	cmd.AddCommand(newLeaveTransitionCommand("decline", "Decline a leave request",
		func(ctx context.Context, client gridapi.Client, id string) (*gridapi.LeaveRequest, error) {
			return client.LeaveRequests().Decline(ctx, id)
		}))
	cmd.AddCommand(newLeaveTransitionCommand("cancel", "Cancel a leave request",
		func(ctx context.Context, client gridapi.Client, id string) (*gridapi.LeaveRequest, error) {
			return client.LeaveRequests().Cancel(ctx, id)
		}))

	return cmd
}

func newLeaveListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		cursor   string
		employee string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leave requests",
		Long:  "List leave requests, one page at a time or all pages with --all",
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

			if status != "" {
				opts.WithFilter("status", status)
			}

			if allPages {
				requests, err := client.LeaveRequests().ListAll(ctx, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list leave requests: %w", err)
				}

				return renderOutput(requests, func() error {
					return renderLeaveRequestTable(requests, nil)
				})
			}

			page, err := client.LeaveRequests().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list leave requests: %w", err)
			}

			return renderOutput(page.Results, func() error {
				return renderLeaveRequestTable(page.Results, page)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor to resume from")
	cmd.Flags().StringVar(&employee, "employee", "", "filter by employee ID")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, approved, declined, canceled)")

	return cmd
}

func renderLeaveRequestTable(requests []gridapi.LeaveRequest, page *gridapi.ListResponse[gridapi.LeaveRequest]) error {
	if len(requests) == 0 {
		_, _ = os.Stdout.WriteString("No leave requests found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Employee", "Type", "Status", "Start", "End")

	for _, request := range requests {
		_ = table.Append(request.ID, request.EmployeeID, request.LeaveType,
			string(request.Status), request.StartDate, request.EndDate)
	}

	_ = table.Render()

	if page != nil {
		printPageFooter(page)
	}

	return nil
}

func newLeaveGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LEAVE_REQUEST_ID",
		Short: "Get leave request details",
		Long:  "Display detailed information about a specific leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request, err := client.LeaveRequests().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get leave request: %w", err)
			}

			return renderOutput(request, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				hours := formatHoursPtr(request.NumHours)

				_ = table.Append("ID", request.ID)
				_ = table.Append("Employee", request.EmployeeID)
				_ = table.Append("Type", request.LeaveType)
				_ = table.Append("Status", string(request.Status))
				_ = table.Append("Start Date", request.StartDate)
				_ = table.Append("End Date", request.EndDate)
				_ = table.Append("Hours", hours)
				_ = table.Append("Reason", formatStringPtr(request.Reason))
				_ = table.Append("Created", request.CreatedAt.Format(time.RFC3339))
				_ = table.Append("Updated", request.UpdatedAt.Format(time.RFC3339))

				_, _ = os.Stdout.WriteString("Leave request details:\n\n")

				_ = table.Render()

				return nil
			})
		},
	}
}

func formatHoursPtr(hours *float64) string {
	if hours == nil {
		return "N/A"
	}

	return strconv.FormatFloat(*hours, 'f', -1, 64)
}

func newLeaveCreateCommand() *cobra.Command {
	var (
		employee  string
		leaveType string
		startDate string
		endDate   string
		numHours  float64
		reason    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a leave request",
		Long:  "Create a new leave request in the pending state",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateDate(startDate)
			if err != nil {
				return err
			}

			err = validateDate(endDate)
			if err != nil {
				return err
			}

			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request := &gridapi.LeaveRequestCreateRequest{
				EmployeeID: employee,
				LeaveType:  leaveType,
				StartDate:  startDate,
				EndDate:    endDate,
			}

			if cmd.Flags().Changed("hours") {
				request.NumHours = &numHours
			}

			if reason != "" {
				request.Reason = &reason
			}

			created, err := client.LeaveRequests().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create leave request: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created leave request %s (%s)\n", created.ID, created.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "employee ID (required)")
	cmd.Flags().StringVar(&leaveType, "type", "", "leave type, e.g. vacation or sick (required)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "first day of leave (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "last day of leave (YYYY-MM-DD, required)")
	cmd.Flags().Float64Var(&numHours, "hours", 0, "hours of leave for partial days")
	cmd.Flags().StringVar(&reason, "reason", "", "reason for the request")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("end-date")

	return cmd
}

func newLeaveTransitionCommand(action, short string,
	transition func(ctx context.Context, client gridapi.Client, id string) (*gridapi.LeaveRequest, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   action + " LEAVE_REQUEST_ID",
		Short: short,
		Long:  short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request, err := transition(context.Background(), client, args[0])
			if err != nil {
				return fmt.Errorf("failed to %s leave request: %w", action, err)
			}

			fmt.Fprintf(os.Stdout, "Leave request %s is now %s\n", request.ID, request.Status)

			return nil
		},
	}
}

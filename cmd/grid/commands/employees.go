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

// NewEmployeesCommand creates the employees command group.
func NewEmployeesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Manage employees",
		Long:    "List, create, update, and terminate employee records",
	}

	cmd.AddCommand(newEmployeesListCommand())
	cmd.AddCommand(newEmployeesGetCommand())
	cmd.AddCommand(newEmployeesCreateCommand())
	cmd.AddCommand(newEmployeesUpdateCommand())
	cmd.AddCommand(newEmployeesTerminateCommand())

	return cmd
}

func newEmployeesListCommand() *cobra.Command {
	var (
		allPages   bool
		limit      int
		cursor     string
		status     string
		department string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Long:  "List employee records, one page at a time or all pages with --all",
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

			if department != "" {
				opts.WithFilter("department_id", department)
			}

			if allPages {
				employees, err := client.Employees().ListAll(ctx, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list employees: %w", err)
				}

				return renderOutput(employees, func() error {
					return renderEmployeeTable(employees, nil)
				})
			}

			page, err := client.Employees().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}

			return renderOutput(page.Results, func() error {
				return renderEmployeeTable(page.Results, page)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor to resume from")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (onboarding, active, on_leave, terminated)")
	cmd.Flags().StringVar(&department, "department", "", "filter by department ID")

	return cmd
}

func renderEmployeeTable(employees []gridapi.Employee, page *gridapi.ListResponse[gridapi.Employee]) error {
	if len(employees) == 0 {
		_, _ = os.Stdout.WriteString("No employees found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Title", "Status", "Department")

	for _, employee := range employees {
		_ = table.Append(employee.ID,
			employee.FirstName+" "+employee.LastName,
			employee.WorkEmail,
			formatStringPtr(employee.Title),
			string(employee.Status),
			formatStringPtr(employee.DepartmentID))
	}

	_ = table.Render()

	if page != nil {
		printPageFooter(page)
	}

	return nil
}

func newEmployeesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EMPLOYEE_ID",
		Short: "Get employee details",
		Long:  "Display detailed information about a specific employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			employee, err := client.Employees().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get employee: %w", err)
			}

			return renderOutput(employee, func() error {
				return renderEmployeeDetails(employee)
			})
		},
	}
}

func renderEmployeeDetails(employee *gridapi.Employee) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", employee.ID)
	_ = table.Append("Name", employee.FirstName+" "+employee.LastName)
	_ = table.Append("Preferred Name", formatStringPtr(employee.PreferredName))
	_ = table.Append("Email", employee.WorkEmail)
	_ = table.Append("Title", formatStringPtr(employee.Title))
	_ = table.Append("Status", string(employee.Status))
	_ = table.Append("Department", formatStringPtr(employee.DepartmentID))
	_ = table.Append("Team", formatStringPtr(employee.TeamID))
	_ = table.Append("Manager", formatStringPtr(employee.ManagerID))
	_ = table.Append("Start Date", formatStringPtr(employee.StartDate))
	_ = table.Append("End Date", formatStringPtr(employee.EndDate))
	_ = table.Append("Created", employee.CreatedAt.Format(time.RFC3339))
	_ = table.Append("Updated", employee.UpdatedAt.Format(time.RFC3339))

	_, _ = os.Stdout.WriteString("Employee details:\n\n")

	_ = table.Render()

	return nil
}

func newEmployeesCreateCommand() *cobra.Command {
	var (
		firstName  string
		lastName   string
		workEmail  string
		title      string
		department string
		team       string
		manager    string
		startDate  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Long:  "Create a new employee record",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request := &gridapi.EmployeeCreateRequest{
				FirstName: firstName,
				LastName:  lastName,
				WorkEmail: workEmail,
			}

			if title != "" {
				request.Title = &title
			}

			if department != "" {
				request.DepartmentID = &department
			}

			if team != "" {
				request.TeamID = &team
			}

			if manager != "" {
				request.ManagerID = &manager
			}

			if startDate != "" {
				err := validateDate(startDate)
				if err != nil {
					return err
				}

				request.StartDate = &startDate
			}

			employee, err := client.Employees().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create employee: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created employee '%s %s' with ID %s\n",
				employee.FirstName, employee.LastName, employee.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&workEmail, "email", "", "work email (required)")
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&department, "department", "", "department ID")
	cmd.Flags().StringVar(&team, "team", "", "team ID")
	cmd.Flags().StringVar(&manager, "manager", "", "manager employee ID")
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newEmployeesUpdateCommand() *cobra.Command {
	var (
		firstName     string
		lastName      string
		preferredName string
		workEmail     string
		title         string
		department    string
		team          string
		manager       string
	)

	cmd := &cobra.Command{
		Use:   "update EMPLOYEE_ID",
		Short: "Update an employee",
		Long:  "Update fields of an existing employee record; omitted flags are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request := &gridapi.EmployeeUpdateRequest{}

			if cmd.Flags().Changed("first-name") {
				request.FirstName = &firstName
			}

			if cmd.Flags().Changed("last-name") {
				request.LastName = &lastName
			}

			if cmd.Flags().Changed("preferred-name") {
				request.PreferredName = &preferredName
			}

			if cmd.Flags().Changed("email") {
				request.WorkEmail = &workEmail
			}

			if cmd.Flags().Changed("title") {
				request.Title = &title
			}

			if cmd.Flags().Changed("department") {
				request.DepartmentID = &department
			}

			if cmd.Flags().Changed("team") {
				request.TeamID = &team
			}

			if cmd.Flags().Changed("manager") {
				request.ManagerID = &manager
			}

			employee, err := client.Employees().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update employee: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Updated employee '%s %s'\n", employee.FirstName, employee.LastName)

			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&preferredName, "preferred-name", "", "preferred name")
	cmd.Flags().StringVar(&workEmail, "email", "", "work email")
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&department, "department", "", "department ID")
	cmd.Flags().StringVar(&team, "team", "", "team ID")
	cmd.Flags().StringVar(&manager, "manager", "", "manager employee ID")

	return cmd
}

func newEmployeesTerminateCommand() *cobra.Command {
	var (
		endDate string
		reason  string
	)

	cmd := &cobra.Command{
		Use:   "terminate EMPLOYEE_ID",
		Short: "Terminate an employee",
		Long:  "Mark an employee as terminated with an end date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateDate(endDate)
			if err != nil {
				return err
			}

			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request := &gridapi.EmployeeTerminateRequest{
				EndDate: endDate,
			}

			if reason != "" {
				request.Reason = &reason
			}

			employee, err := client.Employees().Terminate(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to terminate employee: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Terminated employee '%s %s' effective %s\n",
				employee.FirstName, employee.LastName, endDate)

			return nil
		},
	}

	cmd.Flags().StringVar(&endDate, "end-date", "", "termination date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&reason, "reason", "", "termination reason")
	_ = cmd.MarkFlagRequired("end-date")

	return cmd
}

// validateDate checks a YYYY-MM-DD date string.
func validateDate(date string) error {
	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDateFormat, date)
	}

	return nil
}

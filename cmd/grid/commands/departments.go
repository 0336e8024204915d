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

// NewDepartmentsCommand creates the departments command group.
func NewDepartmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "dept"},
		Short:   "Manage departments",
		Long:    "List, create, update, and delete departments",
	}

	cmd.AddCommand(newDepartmentsListCommand())
	cmd.AddCommand(newDepartmentsGetCommand())
	cmd.AddCommand(newDepartmentsCreateCommand())
	cmd.AddCommand(newDepartmentsUpdateCommand())
	cmd.AddCommand(newDepartmentsDeleteCommand())

	return cmd
}

func newDepartmentsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		cursor   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		Long:  "List departments, one page at a time or all pages with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := listLimitOptions(limit, cursor)

			if allPages {
				departments, err := client.Departments().ListAll(ctx, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list departments: %w", err)
				}

				return renderOutput(departments, func() error {
					return renderDepartmentTable(departments, nil)
				})
			}

			page, err := client.Departments().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list departments: %w", err)
			}

			return renderOutput(page.Results, func() error {
				return renderDepartmentTable(page.Results, page)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor to resume from")

	return cmd
}

func renderDepartmentTable(departments []gridapi.Department, page *gridapi.ListResponse[gridapi.Department]) error {
	if len(departments) == 0 {
		_, _ = os.Stdout.WriteString("No departments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Parent", "Created")

	for _, department := range departments {
		_ = table.Append(department.ID, department.Name,
			formatStringPtr(department.ParentID),
			department.CreatedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	if page != nil {
		printPageFooter(page)
	}

	return nil
}

func newDepartmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DEPARTMENT_ID",
		Short: "Get department details",
		Long:  "Display detailed information about a specific department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			department, err := client.Departments().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get department: %w", err)
			}

			return renderOutput(department, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", department.ID)
				_ = table.Append("Name", department.Name)
				_ = table.Append("Parent", formatStringPtr(department.ParentID))
				_ = table.Append("Created", department.CreatedAt.Format(time.RFC3339))
				_ = table.Append("Updated", department.UpdatedAt.Format(time.RFC3339))

				_, _ = os.Stdout.WriteString("Department details:\n\n")

				_ = table.Render()

				return nil
			})
		},
	}
}

func newDepartmentsCreateCommand() *cobra.Command {
	var (
		name   string
		parent string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		Long:  "Create a new department",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrDepartmentNameRequired
			}

			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request := &gridapi.DepartmentCreateRequest{Name: name}
			if parent != "" {
				request.ParentID = &parent
			}

			department, err := client.Departments().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create department: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created department '%s' with ID %s\n", department.Name, department.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "department name (required)")
	cmd.Flags().StringVar(&parent, "parent", "", "parent department ID")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newDepartmentsUpdateCommand() *cobra.Command {
	var (
		name   string
		parent string
	)

	cmd := &cobra.Command{
		Use:   "update DEPARTMENT_ID",
		Short: "Update a department",
		Long:  "Update fields of an existing department; omitted flags are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			request := &gridapi.DepartmentUpdateRequest{}

			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("parent") {
				request.ParentID = &parent
			}

			department, err := client.Departments().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update department: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Updated department '%s'\n", department.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "department name")
	cmd.Flags().StringVar(&parent, "parent", "", "parent department ID")

	return cmd
}

func newDepartmentsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete DEPARTMENT_ID",
		Short: "Delete a department",
		Long:  "Delete a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			departmentID := args[0]

			if !force {
				fmt.Fprintf(os.Stdout, "Really delete department '%s'? (y/N): ", departmentID)

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

			err = client.Departments().Delete(context.Background(), departmentID)
			if err != nil {
				return fmt.Errorf("failed to delete department: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted department '%s'\n", departmentID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

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

// NewTeamsCommand creates the teams command group.
func NewTeamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "Manage teams",
		Long:    "List teams and show team details",
	}

	cmd.AddCommand(newTeamsListCommand())
	cmd.AddCommand(newTeamsGetCommand())

	return cmd
}

func newTeamsListCommand() *cobra.Command {
	var (
		allPages   bool
		limit      int
		cursor     string
		department string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams",
		Long:  "List teams, one page at a time or all pages with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := listLimitOptions(limit, cursor)
			if department != "" {
				opts.WithFilter("department_id", department)
			}

			if allPages {
				teams, err := client.Teams().ListAll(ctx, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list teams: %w", err)
				}

				return renderOutput(teams, func() error {
					return renderTeamTable(teams, nil)
				})
			}

			page, err := client.Teams().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list teams: %w", err)
			}

			return renderOutput(page.Results, func() error {
				return renderTeamTable(page.Results, page)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor to resume from")
	cmd.Flags().StringVar(&department, "department", "", "filter by department ID")

	return cmd
}

func renderTeamTable(teams []gridapi.Team, page *gridapi.ListResponse[gridapi.Team]) error {
	if len(teams) == 0 {
		_, _ = os.Stdout.WriteString("No teams found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Department", "Created")

	for _, team := range teams {
		_ = table.Append(team.ID, team.Name,
			formatStringPtr(team.DepartmentID),
			team.CreatedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	if page != nil {
		printPageFooter(page)
	}

	return nil
}

func newTeamsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEAM_ID",
		Short: "Get team details",
		Long:  "Display detailed information about a specific team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClientWithAPI(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			team, err := client.Teams().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get team: %w", err)
			}

			return renderOutput(team, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", team.ID)
				_ = table.Append("Name", team.Name)
				_ = table.Append("Department", formatStringPtr(team.DepartmentID))
				_ = table.Append("Created", team.CreatedAt.Format(time.RFC3339))
				_ = table.Append("Updated", team.UpdatedAt.Format(time.RFC3339))

				_, _ = os.Stdout.WriteString("Team details:\n\n")

				_ = table.Render()

				return nil
			})
		},
	}
}

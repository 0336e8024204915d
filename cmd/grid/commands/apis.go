package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/peoplegrid/gridapi/internal/constants"
)

// NewAPIsCommand creates the apis command group for managing API endpoints.
func NewAPIsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apis",
		Short: "Manage Grid API endpoints",
		Long:  "Add, list, remove, and switch between configured Grid API endpoints",
	}

	cmd.AddCommand(newAPIsAddCommand())
	cmd.AddCommand(newAPIsListCommand())
	cmd.AddCommand(newAPIsRemoveCommand())
	cmd.AddCommand(newAPIsUseCommand())

	return cmd
}

func newAPIsAddCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "add ENDPOINT",
		Short: "Add an API endpoint",
		Long:  "Add a Grid API endpoint to the configuration and make it the current API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := normalizeEndpointURL(args[0])
			domain := extractDomainFromEndpoint(endpoint)

			config := loadConfig()
			if config.APIs == nil {
				config.APIs = make(map[string]*APIConfig)
			}

			apiConfig, exists := config.APIs[domain]
			if !exists {
				apiConfig = &APIConfig{}
				config.APIs[domain] = apiConfig
			}

			apiConfig.Endpoint = endpoint
			if token != "" {
				apiConfig.Token = token
			}

			config.CurrentAPI = domain

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Added API '%s' (%s) and set it as current\n", domain, endpoint)

			if apiConfig.Token == "" {
				fmt.Fprintln(os.Stdout, "No token stored. Use 'grid login' to authenticate.")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "API token for this endpoint")

	return cmd
}

func newAPIsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured APIs",
		Long:  "List all configured Grid API endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if len(config.APIs) == 0 {
				fmt.Fprintln(os.Stdout, "No APIs configured. Use 'grid apis add' to add one.")

				return nil
			}

			return renderOutput(config.APIs, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Domain", "Endpoint", "Authenticated", "Current")

				for domain, apiConfig := range config.APIs {
					authenticated := "no"
					if apiConfig.Token != "" {
						authenticated = "yes"
					}

					current := ""
					if domain == config.CurrentAPI {
						current = "yes"
					}

					_ = table.Append([]string{domain, apiConfig.Endpoint, authenticated, current})
				}

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newAPIsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove DOMAIN",
		Short: "Remove an API endpoint",
		Long:  "Remove a configured Grid API endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]

			config := loadConfig()

			_, exists := config.APIs[domain]
			if !exists {
				return fmt.Errorf("%w: '%s'", constants.ErrAPIConfigNotFound, domain)
			}

			delete(config.APIs, domain)

			if config.CurrentAPI == domain {
				config.CurrentAPI = ""
				for remaining := range config.APIs {
					config.CurrentAPI = remaining

					break
				}
			}

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Removed API '%s'\n", domain)

			return nil
		},
	}
}

func newAPIsUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use DOMAIN",
		Short: "Switch the current API",
		Long:  "Set the current Grid API endpoint used by subsequent commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]

			config := loadConfig()

			apiConfig, exists := config.APIs[domain]
			if !exists {
				return fmt.Errorf("%w: '%s', use 'grid apis list' to see available APIs", constants.ErrAPIConfigNotFound, domain)
			}

			config.CurrentAPI = domain

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Now using API '%s' (%s)\n", domain, apiConfig.Endpoint)

			return nil
		},
	}
}
